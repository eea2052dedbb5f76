package engine

import (
	"context"

	"goalquest/internal/storage"
)

// UpdateProfile applies the partial update and unlocks the profile
// achievement once a display name and tradition are both present.
func (s *Service) UpdateProfile(ctx context.Context, u storage.ProfileUpdate) (*storage.Profile, error) {
	if err := s.profiles.Update(ctx, u); err != nil {
		return nil, err
	}

	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil && p.DisplayName != "" && p.Tradition != "" {
		if _, err := s.Unlock(ctx, "profile_complete"); err != nil {
			return nil, err
		}
	}
	return p, nil
}
