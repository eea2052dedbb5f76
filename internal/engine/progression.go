package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"goalquest/internal/storage"
)

// LevelCap is the highest reachable level. XP earned at the cap still
// accrues to current_xp and total_xp but no further level-ups occur.
const LevelCap = 100

var errInsufficientGold = errors.New("insufficient gold")

// XPToNextLevel is the cost of leaving the given level.
func XPToNextLevel(level int) int {
	return level * 500
}

// applyXP adds xp to the player and consumes level-up thresholds in order.
// Returns whether at least one level was gained.
func applyXP(p *storage.Player, xp int) bool {
	p.CurrentXP += xp
	p.TotalXP += xp

	leveled := false
	for p.Level < LevelCap && p.CurrentXP >= XPToNextLevel(p.Level) {
		p.CurrentXP -= XPToNextLevel(p.Level)
		p.Level++
		leveled = true
	}
	return leveled
}

// AddXP awards xp and reports whether the player leveled up.
func (s *Service) AddXP(ctx context.Context, xp int) (bool, error) {
	if xp <= 0 {
		return false, nil
	}
	leveled := false
	_, err := s.players.Mutate(ctx, func(p *storage.Player) error {
		if applyXP(p, xp) {
			leveled = true
			now := time.Now().In(s.loc)
			p.LastLevelUp = &now
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("add xp: %w", err)
	}
	if leveled {
		s.log.Info("level up", zap.Int("xp", xp))
	}
	return leveled, nil
}

// AddGold credits both current and lifetime gold.
func (s *Service) AddGold(ctx context.Context, gold int) error {
	if gold <= 0 {
		return nil
	}
	_, err := s.players.Mutate(ctx, func(p *storage.Player) error {
		p.CurrentGold += gold
		p.LifetimeGold += gold
		return nil
	})
	if err != nil {
		return fmt.Errorf("add gold: %w", err)
	}
	return nil
}

// SpendGold debits amount if the balance covers it. The check and the debit
// share one transaction, so the balance can never go negative. Returns
// (false, nil) when the player cannot afford it.
func (s *Service) SpendGold(ctx context.Context, amount int) (bool, error) {
	if amount <= 0 {
		return true, nil
	}
	_, err := s.players.Mutate(ctx, func(p *storage.Player) error {
		if p.CurrentGold < amount {
			return errInsufficientGold
		}
		p.CurrentGold -= amount
		return nil
	})
	if errors.Is(err, errInsufficientGold) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("spend gold: %w", err)
	}
	return true, nil
}

// UpdateStat adjusts one of the six stats by delta, clamping at zero.
func (s *Service) UpdateStat(ctx context.Context, stat string, delta int) error {
	_, err := s.players.Mutate(ctx, func(p *storage.Player) error {
		var target *int
		switch stat {
		case "strength":
			target = &p.Strength
		case "intelligence":
			target = &p.Intelligence
		case "vitality":
			target = &p.Vitality
		case "agility":
			target = &p.Agility
		case "sense":
			target = &p.Sense
		case "willpower":
			target = &p.Willpower
		default:
			return fmt.Errorf("unknown stat %q", stat)
		}
		*target += delta
		if *target < 0 {
			*target = 0
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update stat: %w", err)
	}
	return nil
}
