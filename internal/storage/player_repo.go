package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const playerCols = `id, level, current_xp, total_xp, last_level_up,
	strength, intelligence, vitality, agility, sense, willpower,
	current_gold, lifetime_gold`

type PlayerRepo struct {
	db *sql.DB
}

func NewPlayerRepo(db *sql.DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

func (r *PlayerRepo) Get(ctx context.Context) (*Player, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+playerCols+` FROM player WHERE id = 1`)
	return scanPlayer(row)
}

// Mutate runs fn against the current player row inside a transaction and
// persists the result. No other reader can observe an intermediate state,
// which keeps the level/current_xp pair consistent.
func (r *PlayerRepo) Mutate(ctx context.Context, fn func(p *Player) error) (*Player, error) {
	var out *Player
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT `+playerCols+` FROM player WHERE id = 1`)
		p, err := scanPlayer(row)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("player row missing")
		}
		if err := fn(p); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE player
			SET level = ?, current_xp = ?, total_xp = ?, last_level_up = ?,
				strength = ?, intelligence = ?, vitality = ?, agility = ?, sense = ?, willpower = ?,
				current_gold = ?, lifetime_gold = ?
			WHERE id = 1
		`, p.Level, p.CurrentXP, p.TotalXP, p.LastLevelUp,
			p.Strength, p.Intelligence, p.Vitality, p.Agility, p.Sense, p.Willpower,
			p.CurrentGold, p.LifetimeGold)
		if err != nil {
			return fmt.Errorf("player update: %w", err)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanPlayer(row scanner) (*Player, error) {
	var p Player
	var lastLevelUp sql.NullTime
	err := row.Scan(
		&p.ID, &p.Level, &p.CurrentXP, &p.TotalXP, &lastLevelUp,
		&p.Strength, &p.Intelligence, &p.Vitality, &p.Agility, &p.Sense, &p.Willpower,
		&p.CurrentGold, &p.LifetimeGold,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("player scan: %w", err)
	}
	if lastLevelUp.Valid {
		v := lastLevelUp.Time
		p.LastLevelUp = &v
	}
	return &p, nil
}
