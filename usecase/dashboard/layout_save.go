package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
)

// SaveLayoutInput names the snapshot to store.
type SaveLayoutInput struct {
	// Name is the snapshot name, unique among stored snapshots.
	Name string `json:"name"`
	// Overwrite replaces an existing snapshot of the same name.
	Overwrite bool `json:"overwrite"`
}

// SaveLayoutOutput wraps the stored snapshot.
type SaveLayoutOutput struct {
	// Snapshot is the portable snapshot that was stored.
	Snapshot *model.LayoutSnapshot `json:"snapshot"`
}

// SaveLayout serializes the visible part of the live arrangement, sorted by
// order, into a named snapshot. Without Overwrite a name collision fails
// with model.ErrDuplicateName and nothing is stored.
func (s *Store) SaveLayout(ctx context.Context, in *SaveLayoutInput) (*SaveLayoutOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrLayoutInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	snap := model.SnapshotFromArrangement(in.Name, s.live, s.reg)
	if err := s.Repos.Layout.Save(ctx, snap, in.Overwrite); err != nil {
		return nil, err
	}
	return &SaveLayoutOutput{Snapshot: snap}, nil
}
