package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/internal/logging"
	"github.com/deckops/deckops/models/layoutdoc"
)

// ImportLayoutInput carries a portable layout file payload.
type ImportLayoutInput struct {
	// Data is the *.layout.json payload.
	Data []byte `json:"data"`
	// Overwrite replaces an existing snapshot of the same name.
	Overwrite bool `json:"overwrite"`
}

// ImportLayoutOutput wraps the stored snapshot and resulting arrangement.
type ImportLayoutOutput struct {
	// Snapshot is the imported snapshot as stored.
	Snapshot *model.LayoutSnapshot `json:"snapshot"`
	// Items is the live arrangement after applying the import as replace.
	Items []model.WidgetInstance `json:"items"`
	// Skipped lists widget type IDs unknown to the registry.
	Skipped []string `json:"skipped,omitempty"`
}

// ImportLayout parses a portable layout payload, stores it under its
// embedded name, and applies it to the live arrangement as a replace. An
// unsupported version or malformed payload fails before any state changes;
// a name collision without Overwrite likewise leaves the live arrangement
// untouched.
func (s *Store) ImportLayout(ctx context.Context, in *ImportLayoutInput) (*ImportLayoutOutput, error) {
	if in == nil || len(in.Data) == 0 {
		return nil, model.ErrLayoutInvalid
	}
	snap, err := layoutdoc.Decode(in.Data)
	if err != nil {
		return nil, err
	}
	if snap.Name == "" {
		return nil, model.ErrLayoutInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	snap = model.SanitizeSnapshot(snap, s.reg)
	if err := s.Repos.Layout.Save(ctx, snap, in.Overwrite); err != nil {
		return nil, err
	}
	items, skipped := model.ApplySnapshot(s.live, snap, model.ApplyReplace, s.reg)
	if len(skipped) > 0 {
		logging.FromContext(ctx).Warn(ctx, "layout import skipped unknown widget types",
			"layout", snap.Name, "skipped", skipped)
	}
	s.live = items
	s.touchActive()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &ImportLayoutOutput{
		Snapshot: snap,
		Items:    model.CloneWidgets(s.live),
		Skipped:  skipped,
	}, nil
}
