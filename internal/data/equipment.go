package data

// EquipmentCategory classifies shop/loot items.
type EquipmentCategory string

const (
	CategoryWeapon    EquipmentCategory = "weapon"
	CategoryArmor     EquipmentCategory = "armor"
	CategoryAccessory EquipmentCategory = "accessory"
	CategoryPotion    EquipmentCategory = "potion"
)

// EquipmentDef describes one piece of equipment or a potion.
type EquipmentDef struct {
	Name     string
	Category EquipmentCategory
	Attack   int32
	Defense  int32
	Heal     int32
	Cost     int64
	Rarity   Rarity
}

// Stackable reports whether multiple copies may be owned. Only potions stack.
func (d *EquipmentDef) Stackable() bool {
	return d.Category == CategoryPotion
}

var equipmentDefs = []EquipmentDef{
	// weapons
	{Name: "Wooden Sword", Category: CategoryWeapon, Attack: 5, Cost: 100, Rarity: RarityCommon},
	{Name: "Iron Sword", Category: CategoryWeapon, Attack: 15, Cost: 500, Rarity: RarityCommon},
	{Name: "Steel Sword", Category: CategoryWeapon, Attack: 30, Cost: 2000, Rarity: RarityUncommon},
	{Name: "Mithril Blade", Category: CategoryWeapon, Attack: 50, Cost: 5000, Rarity: RarityRare},
	{Name: "Dragon Blade", Category: CategoryWeapon, Attack: 60, Cost: 10000, Rarity: RarityEpic},
	{Name: "Excalibur", Category: CategoryWeapon, Attack: 100, Cost: 50000, Rarity: RarityLegendary},
	{Name: "Demon Slayer", Category: CategoryWeapon, Attack: 150, Cost: 100000, Rarity: RarityMythic},
	{Name: "God Killer", Category: CategoryWeapon, Attack: 250, Cost: 500000, Rarity: RarityDivine},

	// armor
	{Name: "Leather Armor", Category: CategoryArmor, Defense: 5, Cost: 100, Rarity: RarityCommon},
	{Name: "Iron Armor", Category: CategoryArmor, Defense: 15, Cost: 500, Rarity: RarityCommon},
	{Name: "Steel Armor", Category: CategoryArmor, Defense: 30, Cost: 2000, Rarity: RarityUncommon},
	{Name: "Mithril Armor", Category: CategoryArmor, Defense: 50, Cost: 5000, Rarity: RarityRare},
	{Name: "Dragon Scale", Category: CategoryArmor, Defense: 60, Cost: 10000, Rarity: RarityEpic},
	{Name: "Phoenix Plate", Category: CategoryArmor, Defense: 100, Cost: 50000, Rarity: RarityLegendary},
	{Name: "Titanium Suit", Category: CategoryArmor, Defense: 150, Cost: 100000, Rarity: RarityMythic},
	{Name: "Celestial Armor", Category: CategoryArmor, Defense: 250, Cost: 500000, Rarity: RarityDivine},

	// accessories
	{Name: "Bronze Ring", Category: CategoryAccessory, Attack: 2, Defense: 2, Cost: 200, Rarity: RarityCommon},
	{Name: "Silver Ring", Category: CategoryAccessory, Attack: 5, Defense: 5, Cost: 1000, Rarity: RarityUncommon},
	{Name: "Gold Ring", Category: CategoryAccessory, Attack: 10, Defense: 10, Cost: 5000, Rarity: RarityRare},
	{Name: "Platinum Ring", Category: CategoryAccessory, Attack: 20, Defense: 20, Cost: 20000, Rarity: RarityEpic},
	{Name: "Diamond Ring", Category: CategoryAccessory, Attack: 40, Defense: 40, Cost: 100000, Rarity: RarityLegendary},
	{Name: "Amulet of Power", Category: CategoryAccessory, Attack: 50, Defense: 30, Cost: 200000, Rarity: RarityMythic},
	{Name: "Crown of Kings", Category: CategoryAccessory, Attack: 100, Defense: 100, Cost: 1000000, Rarity: RarityDivine},

	// potions
	{Name: "Health Potion", Category: CategoryPotion, Heal: 50, Cost: 50, Rarity: RarityCommon},
	{Name: "Greater Health Potion", Category: CategoryPotion, Heal: 100, Cost: 200, Rarity: RarityUncommon},
	{Name: "Super Health Potion", Category: CategoryPotion, Heal: 200, Cost: 500, Rarity: RarityRare},
	{Name: "Elixir of Life", Category: CategoryPotion, Heal: 500, Cost: 2000, Rarity: RarityEpic},
	{Name: "Phoenix Tear", Category: CategoryPotion, Heal: 1000, Cost: 10000, Rarity: RarityLegendary},
}

// EquipmentTable indexes equipment by name. Built by Load.
var EquipmentTable map[string]*EquipmentDef

// equipmentByCategory groups equipment per category. Built by Load.
var equipmentByCategory map[EquipmentCategory][]*EquipmentDef

// GetEquipment returns the equipment definition for name, or nil.
func GetEquipment(name string) *EquipmentDef {
	if EquipmentTable == nil {
		return nil
	}
	return EquipmentTable[name]
}

// EquipmentByCategory returns all items of one category in catalog order.
func EquipmentByCategory(cat EquipmentCategory) []*EquipmentDef {
	if equipmentByCategory == nil {
		return nil
	}
	return equipmentByCategory[cat]
}
