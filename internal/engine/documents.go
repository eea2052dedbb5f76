package engine

import (
	"context"
	"fmt"
	"strings"

	"goalquest/internal/storage"
)

// ImportDocument stores reference material with a small extracted concept
// list. Concepts are the most frequent meaningful words in the text.
func (s *Service) ImportDocument(ctx context.Context, title, content string) (*storage.Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("document title is required")
	}

	id, err := s.documents.Insert(ctx, title, content, extractConcepts(content, 5))
	if err != nil {
		return nil, err
	}
	return s.documents.Get(ctx, id)
}

func (s *Service) DeleteDocument(ctx context.Context, id int64) error {
	return s.documents.Delete(ctx, id)
}

var conceptStopwords = map[string]bool{
	"the": true, "and": true, "for": true, "that": true, "this": true,
	"with": true, "you": true, "your": true, "are": true, "was": true,
	"have": true, "has": true, "from": true, "not": true, "but": true,
	"they": true, "them": true, "their": true, "will": true, "can": true,
	"when": true, "what": true, "which": true, "about": true, "into": true,
}

// extractConcepts returns up to max distinct words of four or more letters,
// ordered by frequency.
func extractConcepts(content string, max int) []string {
	counts := map[string]int{}
	var order []string
	for _, w := range strings.Fields(strings.ToLower(content)) {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		if len(w) < 4 || conceptStopwords[w] {
			continue
		}
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	out := []string{}
	for len(out) < max {
		best := ""
		for _, w := range order {
			if counts[w] > 0 && (best == "" || counts[w] > counts[best]) {
				best = w
			}
		}
		if best == "" {
			break
		}
		out = append(out, best)
		counts[best] = 0
	}
	return out
}
