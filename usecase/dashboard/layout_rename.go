package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
)

// RenameLayoutInput carries the old and new snapshot names.
type RenameLayoutInput struct {
	// Name is the current snapshot name.
	Name string `json:"name"`
	// NewName must not collide with another stored snapshot.
	NewName string `json:"new_name"`
}

// RenameLayoutOutput is empty; the rename either happened or errored.
type RenameLayoutOutput struct{}

// RenameLayout renames a stored snapshot in place, preserving its creation
// time. Collisions fail with model.ErrDuplicateName.
func (s *Store) RenameLayout(ctx context.Context, in *RenameLayoutInput) (*RenameLayoutOutput, error) {
	if in == nil || in.Name == "" || in.NewName == "" {
		return nil, model.ErrLayoutInvalid
	}
	if err := s.Repos.Layout.Rename(ctx, in.Name, in.NewName); err != nil {
		return nil, err
	}
	return &RenameLayoutOutput{}, nil
}
