package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"goalquest/internal/storage"
)

type CreateHabitInput struct {
	Name          string
	Description   string
	Category      string
	Priority      bool
	Frequency     string
	FrequencyDays []string
}

// CreateHabit assesses the habit and persists it with the assessed rewards.
func (s *Service) CreateHabit(ctx context.Context, in CreateHabitInput) (*storage.Habit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("habit name is required")
	}
	if in.Frequency == "" {
		in.Frequency = "daily"
	}

	a := s.coach.AssessHabit(ctx, name, in.Description, in.Category)
	id, err := s.habits.Insert(ctx, storage.HabitInsert{
		Name:          name,
		Description:   in.Description,
		Category:      in.Category,
		Difficulty:    a.Difficulty,
		XPReward:      a.XPReward,
		GoldReward:    a.GoldReward,
		Rationale:     a.Rationale,
		Priority:      in.Priority,
		Frequency:     in.Frequency,
		FrequencyDays: in.FrequencyDays,
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkHabitCountAchievements(ctx); err != nil {
		return nil, err
	}

	s.log.Info("habit created", zap.Int64("id", id), zap.String("name", name), zap.Int("xp", a.XPReward))
	return s.habits.Get(ctx, id)
}

// CompleteHabitResult reports what a completion did. AlreadyCompleted means
// the day was logged before and nothing was awarded.
type CompleteHabitResult struct {
	Habit            *storage.Habit
	AlreadyCompleted bool
	LeveledUp        bool
	Streak           int
}

// CompleteHabit logs the habit for the given day (empty means today) and
// awards its rewards once per day.
func (s *Service) CompleteHabit(ctx context.Context, habitID int64, day string) (*CompleteHabitResult, error) {
	h, err := s.habits.Get(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("habit %d not found", habitID)
	}

	if day == "" {
		day = s.Today()
	} else if _, err := time.Parse(DateLayout, day); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", day, err)
	}

	done, err := s.completions.Exists(ctx, habitID, day)
	if err != nil {
		return nil, err
	}
	if done {
		streak, err := s.HabitStreak(ctx, habitID)
		if err != nil {
			return nil, err
		}
		return &CompleteHabitResult{Habit: h, AlreadyCompleted: true, Streak: streak}, nil
	}

	if err := s.completions.Upsert(ctx, habitID, day); err != nil {
		return nil, err
	}
	leveled, err := s.AddXP(ctx, h.XPReward)
	if err != nil {
		return nil, err
	}
	if err := s.AddGold(ctx, h.GoldReward); err != nil {
		return nil, err
	}
	if err := s.checkCompletionAchievements(ctx); err != nil {
		return nil, err
	}

	streak, err := s.HabitStreak(ctx, habitID)
	if err != nil {
		return nil, err
	}

	s.log.Info("habit completed",
		zap.Int64("id", habitID), zap.String("date", day),
		zap.Int("xp", h.XPReward), zap.Int("streak", streak))
	return &CompleteHabitResult{Habit: h, LeveledUp: leveled, Streak: streak}, nil
}

// UncompleteHabit removes the day's completion. Rewards already granted are
// kept; only the log entry is undone.
func (s *Service) UncompleteHabit(ctx context.Context, habitID int64, day string) error {
	if day == "" {
		day = s.Today()
	}
	return s.completions.Delete(ctx, habitID, day)
}

// DeactivateHabit hides the habit from the active list without losing its
// history.
func (s *Service) DeactivateHabit(ctx context.Context, habitID int64) error {
	inactive := false
	return s.habits.Update(ctx, habitID, storage.HabitUpdate{Active: &inactive})
}

// DeleteHabit removes the habit and its completion history.
func (s *Service) DeleteHabit(ctx context.Context, habitID int64) error {
	return s.habits.Delete(ctx, habitID)
}

// HabitWithStatus pairs a habit with its live streak and today's state for
// list views.
type HabitWithStatus struct {
	storage.Habit
	DoneToday bool
	Streak    int
}

func (s *Service) ListHabits(ctx context.Context, activeOnly bool) ([]HabitWithStatus, error) {
	habits, err := s.habits.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	now := time.Now().In(s.loc)
	out := make([]HabitWithStatus, 0, len(habits))
	for _, h := range habits {
		dates, err := s.completions.ListDates(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		st := HabitWithStatus{Habit: h, Streak: Streak(dates, now)}
		for _, d := range dates {
			if d == today {
				st.DoneToday = true
				break
			}
		}
		out = append(out, st)
	}
	return out, nil
}
