package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
)

// ListLayoutsInput defines optional filters for listing snapshots.
type ListLayoutsInput struct{}

// ListLayoutsOutput wraps listed snapshot metadata.
type ListLayoutsOutput struct {
	// Layouts is the stored snapshots' metadata, ordered by name.
	Layouts []*model.LayoutInfo `json:"layouts"`
}

// ListLayouts returns metadata for every stored snapshot.
func (s *Store) ListLayouts(ctx context.Context, _ *ListLayoutsInput) (*ListLayoutsOutput, error) {
	infos, err := s.Repos.Layout.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListLayoutsOutput{Layouts: infos}, nil
}
