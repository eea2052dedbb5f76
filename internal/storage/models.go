package storage

import "time"

type scanner interface {
	Scan(dest ...any) error
}

type Profile struct {
	ID                  int64
	DisplayName         string
	Timezone            string
	Tradition           string
	FocusAreas          []string
	OnboardingCompleted bool
	CreatedAt           time.Time
}

// Player is the singleton progression record (id = 1).
type Player struct {
	ID           int64
	Level        int
	CurrentXP    int
	TotalXP      int
	LastLevelUp  *time.Time
	Strength     int
	Intelligence int
	Vitality     int
	Agility      int
	Sense        int
	Willpower    int
	CurrentGold  int
	LifetimeGold int
}

type Habit struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	Difficulty    int
	XPReward      int
	GoldReward    int
	Rationale     string
	Priority      bool
	Frequency     string
	FrequencyDays []string
	Active        bool
	CreatedAt     time.Time
}

// Completion marks one day's fulfillment of one habit. Dates are civil
// dates in "2006-01-02" form; (HabitID, Date) is unique.
type Completion struct {
	ID        int64
	HabitID   int64
	Date      string
	Completed bool
}

type Goal struct {
	ID          int64
	Title       string
	Description string
	Category    string
	Deadline    *string
	Progress    int
	Difficulty  int
	XPReward    int
	GoldReward  int
	Completed   bool
	Priority    bool
	Steps       []string
	CreatedAt   time.Time
}

type Note struct {
	ID        int64
	Title     string
	Content   string
	Category  string
	Tags      []string
	AISummary *string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatBonus is the optional single-stat reward attached to an achievement,
// stored as a JSON object in the stat_bonus column.
type StatBonus struct {
	Stat   string `json:"stat"`
	Amount int    `json:"amount"`
}

type Achievement struct {
	ID          int64
	Key         string
	Title       string
	Description string
	Icon        string
	Category    string
	Tier        string
	XPReward    int
	GoldReward  int
	StatBonus   *StatBonus
	UnlockedAt  *time.Time
}

type InventoryEntry struct {
	ID          int64
	ItemID      string
	Quantity    int
	PurchasedAt time.Time
}

// Equipment is the singleton loadout record (id = 1). Nil slot means empty.
type Equipment struct {
	ID       int64
	WeaponID *string
	ArmorID  *string
	RingID   *string
	AmuletID *string
	HeadID   *string
}

type Document struct {
	ID          int64
	Title       string
	Content     string
	KeyConcepts []string
	CreatedAt   time.Time
}

type Motivation struct {
	ID           int64
	Date         string
	Quote        string
	Philosophy   string
	Tradition    string
	HabitContext *string
	CreatedAt    time.Time
}
