package engine

import (
	"context"

	"goalquest/internal/storage"
)

// DailyMotivation returns today's quote, generating and caching it on first
// request. The same quote is served for the rest of the day.
func (s *Service) DailyMotivation(ctx context.Context, habitContext string) (*storage.Motivation, error) {
	today := s.Today()
	if m, err := s.motivations.Get(ctx, today); err != nil {
		return nil, err
	} else if m != nil {
		return m, nil
	}

	tradition := "esoteric"
	userName := ""
	if p, err := s.profiles.Get(ctx); err == nil && p != nil {
		if p.Tradition != "" {
			tradition = p.Tradition
		}
		userName = p.DisplayName
	}

	q := s.coach.DailyQuote(tradition, habitContext, userName)
	var hc *string
	if habitContext != "" {
		hc = &habitContext
	}
	if err := s.motivations.Save(ctx, today, q.Quote, q.Philosophy, q.Tradition, hc); err != nil {
		return nil, err
	}
	return s.motivations.Get(ctx, today)
}
