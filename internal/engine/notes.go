package engine

import (
	"context"
	"fmt"
	"strings"

	"goalquest/internal/storage"
)

type CreateNoteInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

func (s *Service) CreateNote(ctx context.Context, in CreateNoteInput) (*storage.Note, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("note title is required")
	}

	id, err := s.notes.Insert(ctx, storage.NoteInsert{
		Title:    title,
		Content:  in.Content,
		Category: in.Category,
		Tags:     in.Tags,
	})
	if err != nil {
		return nil, err
	}
	if err := s.checkNoteAchievements(ctx); err != nil {
		return nil, err
	}
	return s.notes.Get(ctx, id)
}

func (s *Service) UpdateNote(ctx context.Context, id int64, u storage.NoteUpdate) error {
	return s.notes.Update(ctx, id, u)
}

func (s *Service) PinNote(ctx context.Context, id int64, pinned bool) error {
	return s.notes.Update(ctx, id, storage.NoteUpdate{Pinned: &pinned})
}

func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	return s.notes.Delete(ctx, id)
}

// SummarizeNote generates a summary, stores it on the note, and fires the
// summary achievement.
func (s *Service) SummarizeNote(ctx context.Context, id int64) (string, error) {
	n, err := s.notes.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if n == nil {
		return "", fmt.Errorf("note %d not found", id)
	}

	summary := s.coach.SummarizeNote(ctx, n.Title, n.Content)
	if err := s.notes.Update(ctx, id, storage.NoteUpdate{AISummary: &summary}); err != nil {
		return "", err
	}
	if _, err := s.Unlock(ctx, "ai_summary"); err != nil {
		return "", err
	}
	return summary, nil
}
