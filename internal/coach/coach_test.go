package coach

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFixedFallback() *Fallback {
	return NewFallback(rand.New(rand.NewSource(1)))
}

func TestHabitTierForText(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Run 5k", TierHard},
		{"Gym session", TierHard},
		{"Daily meditate", TierHard},
		{"Read a chapter", TierMedium},
		{"Evening walk", TierMedium},
		{"Drink water", TierEasy},
		{"", TierEasy},
		// Hard keywords win over medium ones.
		{"Read then run", TierHard},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, habitTierForText(c.text), "text=%q", c.text)
	}
}

func TestFallbackAssessHabitRewards(t *testing.T) {
	fb := newFixedFallback()
	ctx := context.Background()

	a, err := fb.AssessHabit(ctx, "Morning run", "", "")
	require.NoError(t, err)

	assert.Equal(t, TierHard, a.Difficulty)
	assert.Contains(t, habitXPBands[TierHard], a.XPReward)
	assert.Equal(t, int(math.Round(float64(a.XPReward)*0.3)), a.GoldReward)
	assert.NotEmpty(t, a.Rationale)
}

func TestFallbackAssessGoalIsMediumTier(t *testing.T) {
	fb := newFixedFallback()
	ctx := context.Background()

	a, err := fb.AssessGoal(ctx, "Anything at all", "", "")
	require.NoError(t, err)

	assert.Equal(t, TierMedium, a.Difficulty)
	assert.Equal(t, 2000, a.XPReward)
	assert.Equal(t, 500, a.GoldReward)
}

func TestGoalRewardTables(t *testing.T) {
	assert.Equal(t, 1000, goalXPRewards[TierEasy])
	assert.Equal(t, 250, goalGoldRewards[TierEasy])
	assert.Equal(t, 3000, goalXPRewards[TierHard])
	assert.Equal(t, 750, goalGoldRewards[TierHard])
}

func TestFallbackSummarizeNote(t *testing.T) {
	fb := newFixedFallback()
	ctx := context.Background()

	s, err := fb.SummarizeNote(ctx, "t", "One. Two. Three. Four. Five.")
	require.NoError(t, err)
	assert.Equal(t, "• One\n• Two\n• Three", s)

	s, err = fb.SummarizeNote(ctx, "t", "   ")
	require.NoError(t, err)
	assert.Equal(t, "No summary available", s)
}

func TestFirstNumber(t *testing.T) {
	assert.Equal(t, 7, firstNumber("Difficulty: 7 because it needs daily effort", 5))
	assert.Equal(t, 10, firstNumber("10/10", 5))
	assert.Equal(t, 5, firstNumber("no numbers here", 5))
}

type failingAssessor struct{}

func (failingAssessor) AssessHabit(context.Context, string, string, string) (*Assessment, error) {
	return nil, errors.New("boom")
}
func (failingAssessor) AssessGoal(context.Context, string, string, string) (*Assessment, error) {
	return nil, errors.New("boom")
}
func (failingAssessor) SummarizeNote(context.Context, string, string) (string, error) {
	return "", errors.New("boom")
}

func TestCoachFallsBackOnCapabilityFailure(t *testing.T) {
	c := NewWithFallback(failingAssessor{}, newFixedFallback(), zap.NewNop())
	ctx := context.Background()

	a := c.AssessHabit(ctx, "Study math", "", "")
	require.NotNil(t, a)
	assert.Equal(t, TierHard, a.Difficulty)

	a = c.AssessGoal(ctx, "Anything", "", "")
	require.NotNil(t, a)
	assert.Equal(t, TierMedium, a.Difficulty)

	s := c.SummarizeNote(ctx, "t", "Alpha. Beta.")
	assert.Equal(t, "• Alpha\n• Beta", s)
}

func TestDailyQuote(t *testing.T) {
	fb := newFixedFallback()

	q := fb.DailyQuote("stoic", "", "")
	assert.Equal(t, "stoic", q.Tradition)
	assert.NotEmpty(t, q.Quote)
	assert.NotEmpty(t, q.Philosophy)

	// Unknown traditions fall back to the esoteric catalog.
	q = fb.DailyQuote("piratical", "", "")
	assert.Equal(t, "esoteric", q.Tradition)

	// Context narrows the pool when it matches an entry.
	q = fb.DailyQuote("samurai", "resilience", "")
	assert.Contains(t, q.Quote, "Fall seven times")
}

func TestDailyQuotePersonalization(t *testing.T) {
	fb := newFixedFallback()

	q := fb.DailyQuote("stoic", "internal control", "Ari")
	assert.Contains(t, q.Philosophy, "Ari, ")

	// The default name is not personalized.
	q = fb.DailyQuote("stoic", "internal control", "Hunter")
	assert.NotContains(t, q.Philosophy, "Hunter, ")
}
