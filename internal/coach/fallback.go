package coach

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Keyword sets for the deterministic tier selection. Hard wins over medium;
// no match means easy.
var (
	hardKeywords   = []string{"workout", "exercise", "run", "gym", "marathon", "lift", "train", "meditate", "write", "study", "practice"}
	mediumKeywords = []string{"read", "walk", "journal", "learn", "organize", "plan", "review"}
)

// Fallback assesses without any external capability. Tier selection is a
// pure function of the input text; only the XP value within the band is
// randomized.
type Fallback struct {
	rng *rand.Rand
}

// NewFallback builds a fallback assessor. Pass nil to seed from the clock;
// tests pass a fixed-seed source.
func NewFallback(rng *rand.Rand) *Fallback {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Fallback{rng: rng}
}

func (f *Fallback) AssessHabit(ctx context.Context, name, description, category string) (*Assessment, error) {
	tier := habitTierForText(name + " " + description)
	xp, gold := habitRewardForTier(tier, f.rng)
	return &Assessment{
		Difficulty: tier,
		XPReward:   xp,
		GoldReward: gold,
		Rationale:  fmt.Sprintf("Assessed as %s based on keywords", tierName(tier)),
	}, nil
}

// AssessGoal has no keyword signal worth trusting for long-horizon goals,
// so it lands on the medium tier.
func (f *Fallback) AssessGoal(ctx context.Context, title, description, category string) (*Assessment, error) {
	return &Assessment{
		Difficulty: TierMedium,
		XPReward:   goalXPRewards[TierMedium],
		GoldReward: goalGoldRewards[TierMedium],
		Rationale:  "Default medium difficulty",
	}, nil
}

// SummarizeNote bullets the first three sentences.
func (f *Fallback) SummarizeNote(ctx context.Context, title, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "No summary available", nil
	}

	var bullets []string
	for _, s := range strings.Split(content, ".") {
		if len(bullets) == 3 {
			break
		}
		s = strings.TrimSpace(s)
		if s != "" {
			bullets = append(bullets, "• "+s)
		}
	}
	if len(bullets) == 0 {
		return "No summary available", nil
	}
	return strings.Join(bullets, "\n"), nil
}

func habitTierForText(text string) int {
	lower := strings.ToLower(text)
	for _, w := range hardKeywords {
		if strings.Contains(lower, w) {
			return TierHard
		}
	}
	for _, w := range mediumKeywords {
		if strings.Contains(lower, w) {
			return TierMedium
		}
	}
	return TierEasy
}
