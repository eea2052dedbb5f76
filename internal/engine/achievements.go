package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"goalquest/internal/storage"
)

// Catalog of achievements seeded at startup. Keys are stable identifiers;
// re-seeding never resets an unlocked row.
var achievementDefs = []storage.AchievementSeed{
	{Key: "first_login", Title: "The Journey Begins", Description: "Open the app for the first time", Icon: "🌅", Category: "milestone", Tier: "bronze", XPReward: 50, GoldReward: 25},
	{Key: "profile_complete", Title: "Know Thyself", Description: "Complete your profile", Icon: "📜", Category: "milestone", Tier: "bronze", XPReward: 100, GoldReward: 50},
	{Key: "first_habit", Title: "Creature of Habit", Description: "Create your first habit", Icon: "🌱", Category: "habits", Tier: "bronze", XPReward: 100, GoldReward: 50},
	{Key: "habits_5", Title: "Routine Builder", Description: "Create 5 habits", Icon: "🔁", Category: "habits", Tier: "silver", XPReward: 250, GoldReward: 100, StatBonus: &storage.StatBonus{Stat: "willpower", Amount: 1}},
	{Key: "habits_10", Title: "Discipline Architect", Description: "Create 10 habits", Icon: "🏗️", Category: "habits", Tier: "gold", XPReward: 500, GoldReward: 200, StatBonus: &storage.StatBonus{Stat: "willpower", Amount: 2}},
	{Key: "first_complete", Title: "First Steps", Description: "Complete a habit for the first time", Icon: "✅", Category: "habits", Tier: "bronze", XPReward: 100, GoldReward: 50},
	{Key: "complete_100", Title: "Centurion", Description: "Log 100 habit completions", Icon: "💯", Category: "habits", Tier: "gold", XPReward: 1000, GoldReward: 500, StatBonus: &storage.StatBonus{Stat: "vitality", Amount: 3}},
	{Key: "first_goal", Title: "Dream Chaser", Description: "Set your first goal", Icon: "🎯", Category: "goals", Tier: "bronze", XPReward: 100, GoldReward: 50},
	{Key: "goals_5", Title: "Visionary", Description: "Set 5 goals", Icon: "🔭", Category: "goals", Tier: "silver", XPReward: 250, GoldReward: 100, StatBonus: &storage.StatBonus{Stat: "sense", Amount: 1}},
	{Key: "goal_steps_5", Title: "Path Maker", Description: "Break a goal into 5 steps", Icon: "🪜", Category: "goals", Tier: "silver", XPReward: 200, GoldReward: 75},
	{Key: "goal_steps_10", Title: "Master Planner", Description: "Break a goal into 10 steps", Icon: "🗺️", Category: "goals", Tier: "gold", XPReward: 400, GoldReward: 150, StatBonus: &storage.StatBonus{Stat: "intelligence", Amount: 1}},
	{Key: "goal_complete_1", Title: "Finisher", Description: "Complete your first goal", Icon: "🏁", Category: "goals", Tier: "silver", XPReward: 500, GoldReward: 250},
	{Key: "goal_complete_5", Title: "Serial Achiever", Description: "Complete 5 goals", Icon: "🏆", Category: "goals", Tier: "gold", XPReward: 1500, GoldReward: 750, StatBonus: &storage.StatBonus{Stat: "willpower", Amount: 3}},
	{Key: "shop_purchase", Title: "Patron", Description: "Buy your first item", Icon: "🛒", Category: "shop", Tier: "bronze", XPReward: 100, GoldReward: 0},
	{Key: "equipment_first", Title: "Geared Up", Description: "Equip your first item", Icon: "⚔️", Category: "shop", Tier: "bronze", XPReward: 150, GoldReward: 50},
	{Key: "first_note", Title: "Scribe", Description: "Write your first note", Icon: "✍️", Category: "notes", Tier: "bronze", XPReward: 100, GoldReward: 50},
	{Key: "notes_10", Title: "Chronicler", Description: "Write 10 notes", Icon: "📚", Category: "notes", Tier: "silver", XPReward: 300, GoldReward: 100, StatBonus: &storage.StatBonus{Stat: "intelligence", Amount: 1}},
	{Key: "ai_summary", Title: "Augmented Mind", Description: "Summarize a note with your coach", Icon: "🧠", Category: "notes", Tier: "bronze", XPReward: 150, GoldReward: 50},
}

// SeedAchievements makes sure every catalog row exists.
func (s *Service) SeedAchievements(ctx context.Context) error {
	return s.achievements.Seed(ctx, achievementDefs)
}

// Unlock awards the named achievement once. Unknown keys and already
// unlocked rows are (false, nil); the timestamp is the idempotence guard.
// Rewards apply in order: timestamp, XP, gold, stat bonus.
func (s *Service) Unlock(ctx context.Context, key string) (bool, error) {
	a, err := s.achievements.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if a == nil || a.UnlockedAt != nil {
		return false, nil
	}

	if err := s.achievements.MarkUnlocked(ctx, key, time.Now().In(s.loc)); err != nil {
		return false, err
	}
	if _, err := s.AddXP(ctx, a.XPReward); err != nil {
		return false, fmt.Errorf("achievement xp: %w", err)
	}
	if err := s.AddGold(ctx, a.GoldReward); err != nil {
		return false, fmt.Errorf("achievement gold: %w", err)
	}
	if a.StatBonus != nil {
		if err := s.UpdateStat(ctx, a.StatBonus.Stat, a.StatBonus.Amount); err != nil {
			return false, fmt.Errorf("achievement stat bonus: %w", err)
		}
	}

	s.log.Info("achievement unlocked", zap.String("key", key), zap.String("title", a.Title))
	return true, nil
}

// checkHabitCountAchievements fires the creation-count milestones.
func (s *Service) checkHabitCountAchievements(ctx context.Context) error {
	n, err := s.habits.Count(ctx)
	if err != nil {
		return err
	}
	if n >= 1 {
		if _, err := s.Unlock(ctx, "first_habit"); err != nil {
			return err
		}
	}
	if n >= 5 {
		if _, err := s.Unlock(ctx, "habits_5"); err != nil {
			return err
		}
	}
	if n >= 10 {
		if _, err := s.Unlock(ctx, "habits_10"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkCompletionAchievements(ctx context.Context) error {
	n, err := s.completions.CountAll(ctx)
	if err != nil {
		return err
	}
	if n >= 1 {
		if _, err := s.Unlock(ctx, "first_complete"); err != nil {
			return err
		}
	}
	if n >= 100 {
		if _, err := s.Unlock(ctx, "complete_100"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkGoalCountAchievements(ctx context.Context) error {
	n, err := s.goals.Count(ctx, nil)
	if err != nil {
		return err
	}
	if n >= 1 {
		if _, err := s.Unlock(ctx, "first_goal"); err != nil {
			return err
		}
	}
	if n >= 5 {
		if _, err := s.Unlock(ctx, "goals_5"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkGoalStepAchievements(ctx context.Context, stepCount int) error {
	if stepCount >= 5 {
		if _, err := s.Unlock(ctx, "goal_steps_5"); err != nil {
			return err
		}
	}
	if stepCount >= 10 {
		if _, err := s.Unlock(ctx, "goal_steps_10"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkGoalCompleteAchievements(ctx context.Context) error {
	completed := true
	n, err := s.goals.Count(ctx, &completed)
	if err != nil {
		return err
	}
	if n >= 1 {
		if _, err := s.Unlock(ctx, "goal_complete_1"); err != nil {
			return err
		}
	}
	if n >= 5 {
		if _, err := s.Unlock(ctx, "goal_complete_5"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkNoteAchievements(ctx context.Context) error {
	n, err := s.notes.Count(ctx)
	if err != nil {
		return err
	}
	if n >= 1 {
		if _, err := s.Unlock(ctx, "first_note"); err != nil {
			return err
		}
	}
	if n >= 10 {
		if _, err := s.Unlock(ctx, "notes_10"); err != nil {
			return err
		}
	}
	return nil
}
