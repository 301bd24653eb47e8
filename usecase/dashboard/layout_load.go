package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/internal/logging"
)

// LoadLayoutInput identifies the snapshot and how to apply it.
type LoadLayoutInput struct {
	// Name is the stored snapshot name.
	Name string `json:"name"`
	// Mode is replace or append; empty defaults to replace.
	Mode model.ApplyMode `json:"mode"`
}

// LoadLayoutOutput wraps the resulting arrangement.
type LoadLayoutOutput struct {
	// Items is the live arrangement after the apply.
	Items []model.WidgetInstance `json:"items"`
	// Skipped lists widget type IDs unknown to the registry at apply time.
	Skipped []string `json:"skipped,omitempty"`
}

// LoadLayout fetches a named snapshot and applies it to the live
// arrangement. Replace installs the snapshot from the origin; append stacks
// it below the current arrangement's maximum extent. Snapshot widgets with
// an unknown type are skipped with a diagnostic, not fatal.
func (s *Store) LoadLayout(ctx context.Context, in *LoadLayoutInput) (*LoadLayoutOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrLayoutInvalid
	}
	mode := in.Mode
	if mode == "" {
		mode = model.ApplyReplace
	}
	if !mode.Valid() {
		return nil, model.ErrLayoutInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	snap, err := s.Repos.Layout.Load(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	items, skipped := model.ApplySnapshot(s.live, snap, mode, s.reg)
	if len(skipped) > 0 {
		logging.FromContext(ctx).Warn(ctx, "layout apply skipped unknown widget types",
			"layout", in.Name, "skipped", skipped)
	}
	s.live = items
	s.touchActive()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &LoadLayoutOutput{Items: model.CloneWidgets(s.live), Skipped: skipped}, nil
}
