package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const achievementCols = `id, key, title, description, icon, category, tier,
	xp_reward, gold_reward, stat_bonus, unlocked_at`

type AchievementRepo struct {
	db *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

type AchievementSeed struct {
	Key         string
	Title       string
	Description string
	Icon        string
	Category    string
	Tier        string
	XPReward    int
	GoldReward  int
	StatBonus   *StatBonus
}

// Seed inserts catalog rows that are not present yet. Existing rows keep
// their unlocked_at, so re-seeding never re-locks an achievement.
func (r *AchievementRepo) Seed(ctx context.Context, defs []AchievementSeed) error {
	for _, d := range defs {
		var bonus *string
		if d.StatBonus != nil {
			data, err := json.Marshal(d.StatBonus)
			if err != nil {
				return fmt.Errorf("marshal stat bonus: %w", err)
			}
			s := string(data)
			bonus = &s
		}
		_, err := r.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO achievements (key, title, description, icon, category, tier,
				xp_reward, gold_reward, stat_bonus)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, d.Key, d.Title, d.Description, d.Icon, d.Category, d.Tier, d.XPReward, d.GoldReward, bonus)
		if err != nil {
			return fmt.Errorf("achievement seed: %w", err)
		}
	}
	return nil
}

func (r *AchievementRepo) Get(ctx context.Context, key string) (*Achievement, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+achievementCols+` FROM achievements WHERE key = ?`, key)
	return scanAchievement(row)
}

func (r *AchievementRepo) List(ctx context.Context, unlockedOnly bool) ([]Achievement, error) {
	q := `SELECT ` + achievementCols + ` FROM achievements`
	if unlockedOnly {
		q += ` WHERE unlocked_at IS NOT NULL`
	}
	q += ` ORDER BY unlocked_at IS NULL, unlocked_at DESC, tier, category`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

func (r *AchievementRepo) MarkUnlocked(ctx context.Context, key string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE achievements SET unlocked_at = ? WHERE key = ?`, at, key)
	if err != nil {
		return fmt.Errorf("achievement unlock: %w", err)
	}
	return nil
}

func scanAchievement(row scanner) (*Achievement, error) {
	var a Achievement
	var bonus sql.NullString
	var unlockedAt sql.NullTime

	err := row.Scan(&a.ID, &a.Key, &a.Title, &a.Description, &a.Icon, &a.Category, &a.Tier,
		&a.XPReward, &a.GoldReward, &bonus, &unlockedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("achievement scan: %w", err)
	}

	// A malformed bonus column degrades to "no bonus", same as list columns.
	if bonus.Valid && bonus.String != "" {
		var sb StatBonus
		if err := json.Unmarshal([]byte(bonus.String), &sb); err == nil && sb.Stat != "" {
			a.StatBonus = &sb
		}
	}
	if unlockedAt.Valid {
		v := unlockedAt.Time
		a.UnlockedAt = &v
	}
	return &a, nil
}
