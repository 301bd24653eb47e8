package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
)

// ImportArrangementInput carries a raw arrangement to install wholesale.
type ImportArrangementInput struct {
	// Items replaces the live arrangement after sanitization.
	Items []model.WidgetInstance `json:"items"`
}

// ImportArrangementOutput wraps the installed arrangement.
type ImportArrangementOutput struct {
	// Items is the sanitized arrangement now live.
	Items []model.WidgetInstance `json:"items"`
	// Seeded is true when sanitization emptied the input and the starter
	// arrangement was substituted.
	Seeded bool `json:"seeded"`
}

// ImportArrangement replaces the live arrangement with a sanitized version
// of the given items. If sanitization drops everything, the seeded starter
// arrangement is installed instead.
func (s *Store) ImportArrangement(ctx context.Context, in *ImportArrangementInput) (*ImportArrangementOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	var items []model.WidgetInstance
	if in != nil {
		items = model.SanitizeArrangement(in.Items, s.reg)
	}
	seeded := false
	if len(items) == 0 {
		items = model.SeedArrangement(s.reg)
		seeded = true
	}
	s.live = items
	s.touchActive()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &ImportArrangementOutput{Items: model.CloneWidgets(s.live), Seeded: seeded}, nil
}
