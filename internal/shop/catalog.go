// Package shop sells the item catalog against the player's gold balance and
// manages the equipment loadout.
package shop

// Price in the two currencies. Crystals are a premium placeholder; nothing
// earns them yet, so crystal-only items are effectively display-only.
type Price struct {
	Gold     int
	Crystals int
}

// Effect describes what an item does when used or equipped. Kind selects
// the interpretation of the remaining fields.
type Effect struct {
	Kind     string // "stat", "xp_boost", "gold_boost", "cosmetic"
	Stat     string
	Amount   int
	Duration string
}

type Item struct {
	ID            string
	Name          string
	Description   string
	Icon          string
	Rarity        string // common, uncommon, rare, epic, legendary
	Category      string // consumable, equipment, cosmetic
	Slot          string // equipment only: weapon, armor, ring, amulet, head
	Price         Price
	RequiredLevel int
	Effect        Effect
	Stackable     bool
	MaxStack      int
}

// Catalog is the full store inventory, in display order.
var Catalog = []Item{
	{
		ID: "potion_focus", Name: "Potion of Focus", Icon: "🧪",
		Description: "Sharpens the mind for a day of deep work.",
		Rarity:      "common", Category: "consumable",
		Price: Price{Gold: 50}, RequiredLevel: 1,
		Effect:    Effect{Kind: "stat", Stat: "intelligence", Amount: 1, Duration: "1d"},
		Stackable: true, MaxStack: 10,
	},
	{
		ID: "potion_vigor", Name: "Potion of Vigor", Icon: "⚗️",
		Description: "Restores energy after a hard training day.",
		Rarity:      "common", Category: "consumable",
		Price: Price{Gold: 50}, RequiredLevel: 1,
		Effect:    Effect{Kind: "stat", Stat: "vitality", Amount: 1, Duration: "1d"},
		Stackable: true, MaxStack: 10,
	},
	{
		ID: "scroll_xp", Name: "Scroll of Insight", Icon: "📜",
		Description: "Doubles XP from the next habit completion.",
		Rarity:      "uncommon", Category: "consumable",
		Price: Price{Gold: 150}, RequiredLevel: 3,
		Effect:    Effect{Kind: "xp_boost", Amount: 2, Duration: "next"},
		Stackable: true, MaxStack: 5,
	},
	{
		ID: "iron_sword", Name: "Iron Sword", Icon: "🗡️",
		Description: "A plain blade for a beginner on the path.",
		Rarity:      "common", Category: "equipment", Slot: "weapon",
		Price: Price{Gold: 200}, RequiredLevel: 2,
		Effect: Effect{Kind: "stat", Stat: "strength", Amount: 2},
	},
	{
		ID: "steel_katana", Name: "Steel Katana", Icon: "⚔️",
		Description: "Forged through ten thousand folds.",
		Rarity:      "rare", Category: "equipment", Slot: "weapon",
		Price: Price{Gold: 800}, RequiredLevel: 8,
		Effect: Effect{Kind: "stat", Stat: "strength", Amount: 5},
	},
	{
		ID: "leather_armor", Name: "Leather Armor", Icon: "🥋",
		Description: "Light protection that never slows you down.",
		Rarity:      "common", Category: "equipment", Slot: "armor",
		Price: Price{Gold: 250}, RequiredLevel: 2,
		Effect: Effect{Kind: "stat", Stat: "vitality", Amount: 2},
	},
	{
		ID: "plate_armor", Name: "Knight's Plate", Icon: "🛡️",
		Description: "Heavy plate for those who endure.",
		Rarity:      "epic", Category: "equipment", Slot: "armor",
		Price: Price{Gold: 1500}, RequiredLevel: 12,
		Effect: Effect{Kind: "stat", Stat: "vitality", Amount: 6},
	},
	{
		ID: "ring_clarity", Name: "Ring of Clarity", Icon: "💍",
		Description: "Quiets the noise; only the task remains.",
		Rarity:      "rare", Category: "equipment", Slot: "ring",
		Price: Price{Gold: 600}, RequiredLevel: 5,
		Effect: Effect{Kind: "stat", Stat: "sense", Amount: 3},
	},
	{
		ID: "amulet_resolve", Name: "Amulet of Resolve", Icon: "📿",
		Description: "Steadies the will when streaks are at stake.",
		Rarity:      "rare", Category: "equipment", Slot: "amulet",
		Price: Price{Gold: 700}, RequiredLevel: 6,
		Effect: Effect{Kind: "stat", Stat: "willpower", Amount: 3},
	},
	{
		ID: "scholars_hood", Name: "Scholar's Hood", Icon: "🎓",
		Description: "Worn thin by years of study.",
		Rarity:      "uncommon", Category: "equipment", Slot: "head",
		Price: Price{Gold: 400}, RequiredLevel: 4,
		Effect: Effect{Kind: "stat", Stat: "intelligence", Amount: 3},
	},
	{
		ID: "dragon_helm", Name: "Dragon Helm", Icon: "🐉",
		Description: "Legend says its wearer never misses a day.",
		Rarity:      "legendary", Category: "equipment", Slot: "head",
		Price: Price{Gold: 5000}, RequiredLevel: 25,
		Effect: Effect{Kind: "stat", Stat: "willpower", Amount: 10},
	},
	{
		ID: "banner_gold", Name: "Golden Banner", Icon: "🚩",
		Description: "A cosmetic standard for your profile.",
		Rarity:      "epic", Category: "cosmetic",
		Price: Price{Crystals: 100}, RequiredLevel: 10,
		Effect: Effect{Kind: "cosmetic"},
	},
}

// ItemByID looks an item up in the catalog; nil when unknown.
func ItemByID(id string) *Item {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

func ItemsByCategory(category string) []Item {
	var out []Item
	for _, it := range Catalog {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// CanAfford checks the gold price only. Crystal prices are advisory until a
// crystal balance exists.
func CanAfford(gold int, it *Item) bool {
	return gold >= it.Price.Gold
}

func MeetsLevelRequirement(level int, it *Item) bool {
	return level >= it.RequiredLevel
}
