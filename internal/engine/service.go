// Package engine implements the progression rules on top of the storage
// layer: XP and levels, gold, streaks, achievements, and the lifecycle of
// habits, goals and notes.
package engine

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"goalquest/internal/coach"
	"goalquest/internal/storage"
)

// DateLayout is the civil-date form used everywhere a day is persisted.
const DateLayout = "2006-01-02"

// Service owns the repositories and the coach. One Service per process.
type Service struct {
	db    *sql.DB
	log   *zap.Logger
	coach *coach.Coach
	loc   *time.Location

	profiles     *storage.ProfileRepo
	players      *storage.PlayerRepo
	habits       *storage.HabitRepo
	completions  *storage.CompletionRepo
	goals        *storage.GoalRepo
	notes        *storage.NoteRepo
	achievements *storage.AchievementRepo
	inventory    *storage.InventoryRepo
	documents    *storage.DocumentRepo
	motivations  *storage.MotivationRepo
}

func NewService(db *sql.DB, c *coach.Coach, loc *time.Location, log *zap.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		db:           db,
		log:          log,
		coach:        c,
		loc:          loc,
		profiles:     storage.NewProfileRepo(db),
		players:      storage.NewPlayerRepo(db),
		habits:       storage.NewHabitRepo(db),
		completions:  storage.NewCompletionRepo(db),
		goals:        storage.NewGoalRepo(db),
		notes:        storage.NewNoteRepo(db),
		achievements: storage.NewAchievementRepo(db),
		inventory:    storage.NewInventoryRepo(db),
		documents:    storage.NewDocumentRepo(db),
		motivations:  storage.NewMotivationRepo(db),
	}
}

// Today returns the current civil date in the configured timezone.
func (s *Service) Today() string {
	return time.Now().In(s.loc).Format(DateLayout)
}

func (s *Service) Coach() *coach.Coach                    { return s.coach }
func (s *Service) Profiles() *storage.ProfileRepo         { return s.profiles }
func (s *Service) Players() *storage.PlayerRepo           { return s.players }
func (s *Service) Habits() *storage.HabitRepo             { return s.habits }
func (s *Service) Completions() *storage.CompletionRepo   { return s.completions }
func (s *Service) Goals() *storage.GoalRepo               { return s.goals }
func (s *Service) Notes() *storage.NoteRepo               { return s.notes }
func (s *Service) Achievements() *storage.AchievementRepo { return s.achievements }
func (s *Service) Inventory() *storage.InventoryRepo      { return s.inventory }
func (s *Service) Documents() *storage.DocumentRepo       { return s.documents }
func (s *Service) Motivations() *storage.MotivationRepo   { return s.motivations }

// Player is a read-through to the singleton progression row.
func (s *Service) Player(ctx context.Context) (*storage.Player, error) {
	return s.players.Get(ctx)
}
