package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"goalquest/internal/storage"
)

type CreateGoalInput struct {
	Title       string
	Description string
	Category    string
	Deadline    *string
	Priority    bool
	Steps       []string
}

// CreateGoal assesses the goal tier and persists it with the tier's fixed
// rewards.
func (s *Service) CreateGoal(ctx context.Context, in CreateGoalInput) (*storage.Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("goal title is required")
	}

	a := s.coach.AssessGoal(ctx, title, in.Description, in.Category)
	id, err := s.goals.Insert(ctx, storage.GoalInsert{
		Title:       title,
		Description: in.Description,
		Category:    in.Category,
		Deadline:    in.Deadline,
		Difficulty:  a.Difficulty,
		XPReward:    a.XPReward,
		GoldReward:  a.GoldReward,
		Priority:    in.Priority,
		Steps:       in.Steps,
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkGoalCountAchievements(ctx); err != nil {
		return nil, err
	}
	if err := s.checkGoalStepAchievements(ctx, len(in.Steps)); err != nil {
		return nil, err
	}

	s.log.Info("goal created", zap.Int64("id", id), zap.String("title", title), zap.Int("difficulty", a.Difficulty))
	return s.goals.Get(ctx, id)
}

// UpdateGoalProgressResult reports the state after a progress update.
type UpdateGoalProgressResult struct {
	Goal          *storage.Goal
	JustCompleted bool
	LeveledUp     bool
}

// UpdateGoalProgress sets progress (0-100). Reaching 100 completes the goal
// and pays its rewards exactly once; completion is one-way, so lowering
// progress afterwards never re-opens the goal or repeats the payout.
func (s *Service) UpdateGoalProgress(ctx context.Context, goalID int64, progress int) (*UpdateGoalProgressResult, error) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	g, err := s.goals.Get(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("goal %d not found", goalID)
	}

	u := storage.GoalUpdate{Progress: &progress}
	justCompleted := progress == 100 && !g.Completed
	if justCompleted {
		completed := true
		u.Completed = &completed
	}
	if err := s.goals.Update(ctx, goalID, u); err != nil {
		return nil, err
	}

	leveled := false
	if justCompleted {
		leveled, err = s.AddXP(ctx, g.XPReward)
		if err != nil {
			return nil, err
		}
		if err := s.AddGold(ctx, g.GoldReward); err != nil {
			return nil, err
		}
		if err := s.checkGoalCompleteAchievements(ctx); err != nil {
			return nil, err
		}
		s.log.Info("goal completed", zap.Int64("id", goalID), zap.Int("xp", g.XPReward))
	}

	g, err = s.goals.Get(ctx, goalID)
	if err != nil {
		return nil, err
	}
	return &UpdateGoalProgressResult{Goal: g, JustCompleted: justCompleted, LeveledUp: leveled}, nil
}

// UpdateGoalSteps replaces the step list and re-checks the step milestones.
func (s *Service) UpdateGoalSteps(ctx context.Context, goalID int64, steps []string) error {
	if err := s.goals.Update(ctx, goalID, storage.GoalUpdate{Steps: &steps}); err != nil {
		return err
	}
	return s.checkGoalStepAchievements(ctx, len(steps))
}

func (s *Service) DeleteGoal(ctx context.Context, goalID int64) error {
	return s.goals.Delete(ctx, goalID)
}
