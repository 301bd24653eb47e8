package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
)

// DeleteLayoutInput identifies the snapshot to delete.
type DeleteLayoutInput struct {
	// Name is the stored snapshot name.
	Name string `json:"name"`
}

// DeleteLayoutOutput is empty because delete has no return entity.
type DeleteLayoutOutput struct{}

// DeleteLayout removes a stored snapshot; deleting an absent name is a
// no-op.
func (s *Store) DeleteLayout(ctx context.Context, in *DeleteLayoutInput) (*DeleteLayoutOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrLayoutInvalid
	}
	if err := s.Repos.Layout.Remove(ctx, in.Name); err != nil {
		return nil, err
	}
	return &DeleteLayoutOutput{}, nil
}
