// Package coach turns free-text habit and goal descriptions into difficulty
// tiers and reward values. A text-generation capability does the grading
// when one is configured; a deterministic keyword fallback covers every
// other case, so callers never see an assessment failure.
package coach

import (
	"context"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

const (
	TierEasy   = 1
	TierMedium = 2
	TierHard   = 3
)

// Assessment is the difficulty/reward triple attached to a habit or goal
// at creation time.
type Assessment struct {
	Difficulty int
	XPReward   int
	GoldReward int
	Rationale  string
}

// Assessor is the injected text-generation capability. Implementations may
// fail; the Coach makes a single attempt and falls back.
type Assessor interface {
	AssessHabit(ctx context.Context, name, description, category string) (*Assessment, error)
	AssessGoal(ctx context.Context, title, description, category string) (*Assessment, error)
	SummarizeNote(ctx context.Context, title, content string) (string, error)
}

// Coach composes the capability with the fallback. A nil capability means
// fallback-only operation.
type Coach struct {
	capability Assessor
	fallback   *Fallback
	log        *zap.Logger
}

func New(capability Assessor, log *zap.Logger) *Coach {
	return &Coach{
		capability: capability,
		fallback:   NewFallback(nil),
		log:        log,
	}
}

// NewWithFallback injects a specific fallback, used by tests to pin the
// reward randomness.
func NewWithFallback(capability Assessor, fb *Fallback, log *zap.Logger) *Coach {
	return &Coach{capability: capability, fallback: fb, log: log}
}

func (c *Coach) AssessHabit(ctx context.Context, name, description, category string) *Assessment {
	if c.capability != nil {
		a, err := c.capability.AssessHabit(ctx, name, description, category)
		if err == nil {
			return a
		}
		c.log.Debug("habit assessment capability failed, using fallback", zap.Error(err))
	}
	a, _ := c.fallback.AssessHabit(ctx, name, description, category)
	return a
}

func (c *Coach) AssessGoal(ctx context.Context, title, description, category string) *Assessment {
	if c.capability != nil {
		a, err := c.capability.AssessGoal(ctx, title, description, category)
		if err == nil {
			return a
		}
		c.log.Debug("goal assessment capability failed, using fallback", zap.Error(err))
	}
	a, _ := c.fallback.AssessGoal(ctx, title, description, category)
	return a
}

func (c *Coach) SummarizeNote(ctx context.Context, title, content string) string {
	if c.capability != nil {
		s, err := c.capability.SummarizeNote(ctx, title, content)
		if err == nil {
			return s
		}
		c.log.Debug("note summary capability failed, using fallback", zap.Error(err))
	}
	s, _ := c.fallback.SummarizeNote(ctx, title, content)
	return s
}

// DailyQuote serves motivational content from the compiled-in catalog.
func (c *Coach) DailyQuote(tradition, habitContext, userName string) Quote {
	return c.fallback.DailyQuote(tradition, habitContext, userName)
}

// Habit reward bands per tier. The value within a band is drawn at random
// for variety, so assessment is deliberately not idempotent.
var habitXPBands = map[int][]int{
	TierEasy:   {50, 100, 150},
	TierMedium: {200, 250, 300},
	TierHard:   {350, 400, 450, 500},
}

// Goal rewards are fixed per tier.
var goalXPRewards = map[int]int{
	TierEasy:   1000,
	TierMedium: 2000,
	TierHard:   3000,
}

var goalGoldRewards = map[int]int{
	TierEasy:   250,
	TierMedium: 500,
	TierHard:   750,
}

func habitRewardForTier(tier int, rng *rand.Rand) (xp, gold int) {
	band := habitXPBands[tier]
	xp = band[rng.Intn(len(band))]
	gold = int(math.Round(float64(xp) * 0.3))
	return xp, gold
}

func tierName(tier int) string {
	switch tier {
	case TierHard:
		return "Hard"
	case TierMedium:
		return "Medium"
	default:
		return "Easy"
	}
}
