package coach

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

// GeminiAssessor grades difficulty with the Gemini API. Any error surfaces
// to the Coach, which falls back; no retry is attempted here.
type GeminiAssessor struct {
	client *genai.Client
	model  string
	rng    *rand.Rand
}

func NewGeminiAssessor(ctx context.Context, apiKey, model string) (*GeminiAssessor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiAssessor{
		client: client,
		model:  model,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (g *GeminiAssessor) generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}

func (g *GeminiAssessor) AssessHabit(ctx context.Context, name, description, category string) (*Assessment, error) {
	prompt := fmt.Sprintf(`Analyze this habit and rate its difficulty on a scale of 1-10.

Habit: %s
Description: %s
Category: %s

Return ONLY a number 1-10 with a brief rationale.

Difficulty Scale:
1-3 = Easy (50-150 XP) - Simple daily tasks
4-6 = Medium (200-300 XP) - Moderate commitment
7-10 = Hard (350-500 XP) - Significant effort required`, name, description, category)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	score := firstNumber(text, 5)
	var tier int
	switch {
	case score <= 3:
		tier = TierEasy
	case score <= 6:
		tier = TierMedium
	default:
		tier = TierHard
	}

	xp, gold := habitRewardForTier(tier, g.rng)
	rationale := text
	if len(rationale) > 100 {
		rationale = rationale[:100]
	}
	return &Assessment{
		Difficulty: tier,
		XPReward:   xp,
		GoldReward: gold,
		Rationale:  fmt.Sprintf("AI assessed as %s difficulty (%d/10): %s", tierName(tier), score, rationale),
	}, nil
}

func (g *GeminiAssessor) AssessGoal(ctx context.Context, title, description, category string) (*Assessment, error) {
	prompt := fmt.Sprintf(`Analyze this goal and rate its difficulty (1=normal, 2=medium, 3=hard). Return ONLY a number 1, 2, or 3.

Goal: %s
Description: %s
Category: %s`, title, description, category)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	tier := firstNumber(text, TierMedium)
	if tier < TierEasy {
		tier = TierEasy
	}
	if tier > TierHard {
		tier = TierHard
	}

	return &Assessment{
		Difficulty: tier,
		XPReward:   goalXPRewards[tier],
		GoldReward: goalGoldRewards[tier],
		Rationale:  fmt.Sprintf("AI assessed as %s difficulty", tierName(tier)),
	}, nil
}

func (g *GeminiAssessor) SummarizeNote(ctx context.Context, title, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty note content")
	}
	prompt := fmt.Sprintf("Summarize this note in 2-3 insightful bullet points:\n\nTitle: %s\n\n%s", title, content)
	return g.generate(ctx, prompt)
}

// firstNumber extracts the first standalone digit run from the response,
// falling back to def when the model returned no number at all.
func firstNumber(text string, def int) int {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		if n, err := strconv.Atoi(field); err == nil {
			return n
		}
	}
	return def
}
