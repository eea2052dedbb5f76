package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

type ProfileUpdate struct {
	DisplayName         *string
	Timezone            *string
	Tradition           *string
	FocusAreas          *[]string
	OnboardingCompleted *bool
}

func (r *ProfileRepo) Get(ctx context.Context) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, display_name, timezone, tradition, focus_areas, onboarding_completed, created_at
		FROM profile WHERE id = 1
	`)

	var p Profile
	var focusAreas sql.NullString
	var onboarded int
	err := row.Scan(&p.ID, &p.DisplayName, &p.Timezone, &p.Tradition, &focusAreas, &onboarded, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}

	p.FocusAreas = decodeList(focusAreas)
	p.OnboardingCompleted = onboarded != 0
	return &p, nil
}

func (r *ProfileRepo) Update(ctx context.Context, u ProfileUpdate) error {
	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if u.DisplayName != nil {
		set("display_name", *u.DisplayName)
	}
	if u.Timezone != nil {
		set("timezone", *u.Timezone)
	}
	if u.Tradition != nil {
		set("tradition", *u.Tradition)
	}
	if u.FocusAreas != nil {
		set("focus_areas", encodeList(*u.FocusAreas))
	}
	if u.OnboardingCompleted != nil {
		set("onboarding_completed", boolToInt(*u.OnboardingCompleted))
	}
	if len(sets) == 0 {
		return nil
	}

	_, err := r.db.ExecContext(ctx, `UPDATE profile SET `+strings.Join(sets, ", ")+` WHERE id = 1`, args...)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
