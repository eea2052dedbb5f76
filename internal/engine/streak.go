package engine

import (
	"context"
	"time"
)

// Streak counts consecutive completed days ending at the present. The walk
// anchors on today when today is completed, otherwise on yesterday, so a day
// that has not been logged yet does not break a running streak. Dates are
// DateLayout strings; order and duplicates do not matter.
func Streak(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	done := make(map[string]bool, len(dates))
	for _, d := range dates {
		done[d] = true
	}

	day := today
	if !done[day.Format(DateLayout)] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for done[day.Format(DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// HabitStreak computes the live streak for one habit.
func (s *Service) HabitStreak(ctx context.Context, habitID int64) (int, error) {
	dates, err := s.completions.ListDates(ctx, habitID)
	if err != nil {
		return 0, err
	}
	return Streak(dates, time.Now().In(s.loc)), nil
}
