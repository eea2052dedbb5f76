package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenSeedsSingletons(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	p, err := NewPlayerRepo(db).Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1000, p.CurrentGold)

	prof, err := NewProfileRepo(db).Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, prof)
	assert.Equal(t, "Hunter", prof.DisplayName)
	assert.Equal(t, "esoteric", prof.Tradition)

	eq, err := NewInventoryRepo(db).GetEquipment(ctx)
	require.NoError(t, err)
	require.NotNil(t, eq)
	assert.Nil(t, eq.WeaponID)
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening an existing database must not re-run migrations.
	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	p, err := NewPlayerRepo(db).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1000, p.CurrentGold)
}

func TestDecodeList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, decodeList(sql.NullString{String: `["a","b"]`, Valid: true}))
	assert.Empty(t, decodeList(sql.NullString{}))
	assert.Empty(t, decodeList(sql.NullString{String: "", Valid: true}))
	// Corrupt JSON degrades to an empty list, never an error.
	assert.Empty(t, decodeList(sql.NullString{String: "{not json", Valid: true}))
}

func TestEncodeListNilIsEmptyArray(t *testing.T) {
	assert.Equal(t, "[]", encodeList(nil))
	assert.Equal(t, `["x"]`, encodeList([]string{"x"}))
}

func TestHabitUpdateMissingIDIsNoOp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewHabitRepo(db)

	name := "ghost"
	require.NoError(t, repo.Update(ctx, 424242, HabitUpdate{Name: &name}))

	h, err := repo.Get(ctx, 424242)
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestHabitUpdateEmptyIsNoOp(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewHabitRepo(db)

	id, err := repo.Insert(ctx, HabitInsert{Name: "Stretch"})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, id, HabitUpdate{}))
	h, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Stretch", h.Name)
}

func TestCompletionUpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	habits := NewHabitRepo(db)
	completions := NewCompletionRepo(db)

	id, err := habits.Insert(ctx, HabitInsert{Name: "Stretch"})
	require.NoError(t, err)

	require.NoError(t, completions.Upsert(ctx, id, "2026-08-29"))
	require.NoError(t, completions.Upsert(ctx, id, "2026-08-29"))

	n, err := completions.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestHabitDeleteRemovesCompletions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	habits := NewHabitRepo(db)
	completions := NewCompletionRepo(db)

	id, err := habits.Insert(ctx, HabitInsert{Name: "Stretch"})
	require.NoError(t, err)
	require.NoError(t, completions.Upsert(ctx, id, "2026-08-29"))

	require.NoError(t, habits.Delete(ctx, id))

	n, err := completions.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAchievementSeedPreservesUnlocks(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAchievementRepo(db)

	defs := []AchievementSeed{{Key: "k1", Title: "T", Description: "D", Icon: "i"}}
	require.NoError(t, repo.Seed(ctx, defs))

	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkUnlocked(ctx, "k1", at))

	require.NoError(t, repo.Seed(ctx, defs))

	a, err := repo.Get(ctx, "k1")
	require.NoError(t, err)
	require.NotNil(t, a.UnlockedAt)
}

func TestAchievementMalformedBonusDegrades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAchievementRepo(db)

	_, err := db.ExecContext(ctx, `
		INSERT INTO achievements (key, title, description, icon, stat_bonus)
		VALUES ('bad', 'B', 'd', 'i', '{oops')
	`)
	require.NoError(t, err)

	a, err := repo.Get(ctx, "bad")
	require.NoError(t, err)
	assert.Nil(t, a.StatBonus)
}

func TestGoalStepsPersistThroughUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewGoalRepo(db)

	id, err := repo.Insert(ctx, GoalInsert{Title: "Learn", Steps: []string{"a", "b", "c"}})
	require.NoError(t, err)

	steps := []string{"a", "b", "c", "d"}
	require.NoError(t, repo.Update(ctx, id, GoalUpdate{Steps: &steps}))

	g, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, steps, g.Steps)
}

func TestMotivationSaveReplacesSameDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewMotivationRepo(db)

	require.NoError(t, repo.Save(ctx, "2026-08-29", "q1", "p1", "stoic", nil))
	require.NoError(t, repo.Save(ctx, "2026-08-29", "q2", "p2", "stoic", nil))

	m, err := repo.Get(ctx, "2026-08-29")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "q2", m.Quote)

	m, err = repo.Get(ctx, "2026-08-30")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestInventorySetSlotRejectsUnknownSlot(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewInventoryRepo(db)

	item := "iron_sword"
	assert.Error(t, repo.SetSlot(ctx, "tail", &item))
}
