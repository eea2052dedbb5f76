package engine

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goalquest/internal/coach"
	"goalquest/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c := coach.NewWithFallback(nil, coach.NewFallback(rand.New(rand.NewSource(1))), zap.NewNop())
	svc := NewService(db, c, time.UTC, zap.NewNop())
	require.NoError(t, svc.SeedAchievements(ctx))
	return svc
}

func TestApplyXPCarriesRemainderAcrossLevels(t *testing.T) {
	p := &storage.Player{Level: 1}
	leveled := applyXP(p, 1500)

	// 1500 pays for level 1 (500) and level 2 (1000) exactly.
	assert.True(t, leveled)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 0, p.CurrentXP)
	assert.Equal(t, 1500, p.TotalXP)
}

func TestApplyXPBelowThreshold(t *testing.T) {
	p := &storage.Player{Level: 1}
	leveled := applyXP(p, 499)

	assert.False(t, leveled)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 499, p.CurrentXP)
}

func TestApplyXPStopsAtLevelCap(t *testing.T) {
	p := &storage.Player{Level: LevelCap}
	leveled := applyXP(p, 1_000_000)

	assert.False(t, leveled)
	assert.Equal(t, LevelCap, p.Level)
	assert.Equal(t, 1_000_000, p.CurrentXP)
}

func TestAddXPSetsLastLevelUp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	leveled, err := svc.AddXP(ctx, 600)
	require.NoError(t, err)
	assert.True(t, leveled)

	p, err := svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 100, p.CurrentXP)
	assert.Equal(t, 600, p.TotalXP)
	require.NotNil(t, p.LastLevelUp)
}

func TestSpendGold(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Seeded balance is 1000.
	ok, err := svc.SpendGold(ctx, 400)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.SpendGold(ctx, 601)
	require.NoError(t, err)
	assert.False(t, ok)

	p, err := svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, 600, p.CurrentGold)
	assert.Equal(t, 0, p.LifetimeGold, "spending never counts toward lifetime earnings")
}

func TestAddGoldTracksLifetime(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddGold(ctx, 250))

	p, err := svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1250, p.CurrentGold)
	assert.Equal(t, 250, p.LifetimeGold)
}

func TestUpdateStat(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateStat(ctx, "strength", 3))
	require.NoError(t, svc.UpdateStat(ctx, "strength", -10))

	p, err := svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Strength, "stat clamps at zero")

	err = svc.UpdateStat(ctx, "charisma", 1)
	assert.Error(t, err)
}

func TestStreak(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(DateLayout)
	}

	assert.Equal(t, 0, Streak(nil, today))
	assert.Equal(t, 1, Streak([]string{day(0)}, today))
	assert.Equal(t, 3, Streak([]string{day(0), day(-1), day(-2)}, today))

	// Today not logged yet: yesterday anchors the streak.
	assert.Equal(t, 2, Streak([]string{day(-1), day(-2)}, today))

	// A gap two days back ends it.
	assert.Equal(t, 1, Streak([]string{day(0), day(-2), day(-3)}, today))

	// Only old history: no live streak.
	assert.Equal(t, 0, Streak([]string{day(-5), day(-6)}, today))
}

func TestUnlockIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.Player(ctx)
	require.NoError(t, err)

	unlocked, err := svc.Unlock(ctx, "first_note")
	require.NoError(t, err)
	assert.True(t, unlocked)

	unlocked, err = svc.Unlock(ctx, "first_note")
	require.NoError(t, err)
	assert.False(t, unlocked, "second unlock must not fire")

	unlocked, err = svc.Unlock(ctx, "no_such_key")
	require.NoError(t, err)
	assert.False(t, unlocked)

	after, err := svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalXP+100, after.TotalXP, "reward granted exactly once")
	assert.Equal(t, before.CurrentGold+50, after.CurrentGold)
}

func TestUnlockAppliesStatBonus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// habits_5 carries +1 willpower.
	unlocked, err := svc.Unlock(ctx, "habits_5")
	require.NoError(t, err)
	require.True(t, unlocked)

	p, err := svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Willpower)
}

func TestCreateHabitAssessesRewards(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	h, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "Morning run", Description: "5k before work"})
	require.NoError(t, err)

	assert.Equal(t, coach.TierHard, h.Difficulty)
	assert.Contains(t, []int{350, 400, 450, 500}, h.XPReward)
	assert.Equal(t, "daily", h.Frequency)

	a, err := svc.Achievements().Get(ctx, "first_habit")
	require.NoError(t, err)
	assert.NotNil(t, a.UnlockedAt)
}

func TestCompleteHabitIsIdempotentPerDay(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	h, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "Stretch"})
	require.NoError(t, err)

	res, err := svc.CompleteHabit(ctx, h.ID, "2026-08-29")
	require.NoError(t, err)
	assert.False(t, res.AlreadyCompleted)

	after, err := svc.Player(ctx)
	require.NoError(t, err)
	xpAfterFirst := after.TotalXP

	res, err = svc.CompleteHabit(ctx, h.ID, "2026-08-29")
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)

	again, err := svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, xpAfterFirst, again.TotalXP, "repeat completion must not re-award")
}

func TestCompleteHabitRejectsBadDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	h, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "Stretch"})
	require.NoError(t, err)

	_, err = svc.CompleteHabit(ctx, h.ID, "29-08-2026")
	assert.Error(t, err)

	_, err = svc.CompleteHabit(ctx, 9999, "")
	assert.Error(t, err)
}

func TestUncompleteHabitKeepsRewards(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	h, err := svc.CreateHabit(ctx, CreateHabitInput{Name: "Stretch"})
	require.NoError(t, err)

	_, err = svc.CompleteHabit(ctx, h.ID, "2026-08-29")
	require.NoError(t, err)
	p, err := svc.Player(ctx)
	require.NoError(t, err)
	xp := p.TotalXP

	require.NoError(t, svc.UncompleteHabit(ctx, h.ID, "2026-08-29"))

	done, err := svc.Completions().Exists(ctx, h.ID, "2026-08-29")
	require.NoError(t, err)
	assert.False(t, done)

	p, err = svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, xp, p.TotalXP)
}

func TestGoalCompletesOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Ship the project"})
	require.NoError(t, err)
	assert.Equal(t, 2000, g.XPReward, "fallback lands on the medium tier")
	assert.Equal(t, 500, g.GoldReward)

	res, err := svc.UpdateGoalProgress(ctx, g.ID, 100)
	require.NoError(t, err)
	assert.True(t, res.JustCompleted)
	assert.True(t, res.Goal.Completed)

	p, err := svc.Player(ctx)
	require.NoError(t, err)
	xp := p.TotalXP

	// Lowering and raising progress again must not pay twice or re-open.
	res, err = svc.UpdateGoalProgress(ctx, g.ID, 40)
	require.NoError(t, err)
	assert.False(t, res.JustCompleted)
	assert.True(t, res.Goal.Completed)

	res, err = svc.UpdateGoalProgress(ctx, g.ID, 100)
	require.NoError(t, err)
	assert.False(t, res.JustCompleted)

	p, err = svc.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, xp, p.TotalXP)
}

func TestGoalProgressClamps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Climb"})
	require.NoError(t, err)

	res, err := svc.UpdateGoalProgress(ctx, g.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Goal.Progress)

	res, err = svc.UpdateGoalProgress(ctx, g.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Goal.Progress)
	assert.True(t, res.JustCompleted)
}

func TestGoalStepsRoundTripAndMilestones(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	g, err := svc.CreateGoal(ctx, CreateGoalInput{Title: "Learn Go", Steps: []string{"a", "b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Steps)

	require.NoError(t, svc.UpdateGoalSteps(ctx, g.ID, []string{"a", "b", "c", "d", "e"}))

	a, err := svc.Achievements().Get(ctx, "goal_steps_5")
	require.NoError(t, err)
	assert.NotNil(t, a.UnlockedAt)
}

func TestSummarizeNotePersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, CreateNoteInput{Title: "Ideas", Content: "First thought. Second thought. Third. Fourth."})
	require.NoError(t, err)

	summary, err := svc.SummarizeNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Contains(t, summary, "• First thought")

	n, err = svc.Notes().Get(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, n.AISummary)
	assert.Equal(t, summary, *n.AISummary)

	a, err := svc.Achievements().Get(ctx, "ai_summary")
	require.NoError(t, err)
	assert.NotNil(t, a.UnlockedAt)
}

func TestDailyMotivationIsCachedPerDay(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	m1, err := svc.DailyMotivation(ctx, "")
	require.NoError(t, err)
	m2, err := svc.DailyMotivation(ctx, "resilience")
	require.NoError(t, err)

	assert.Equal(t, m1.Quote, m2.Quote, "second call the same day serves the cached quote")
}

func TestExtractConcepts(t *testing.T) {
	text := "Discipline beats motivation. Discipline compounds daily while motivation fades."
	got := extractConcepts(text, 3)

	require.NotEmpty(t, got)
	assert.Equal(t, "discipline", got[0])
	assert.LessOrEqual(t, len(got), 3)
}
