package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/models/layoutdoc"
)

// ExportLayoutInput identifies the snapshot to export.
type ExportLayoutInput struct {
	// Name is the stored snapshot name.
	Name string `json:"name"`
}

// ExportLayoutOutput carries the portable file payload.
type ExportLayoutOutput struct {
	// Data is the *.layout.json payload.
	Data []byte `json:"data"`
	// Filename is the suggested export file name.
	Filename string `json:"filename"`
}

// ExportLayout serializes a stored snapshot to its portable file payload.
func (s *Store) ExportLayout(ctx context.Context, in *ExportLayoutInput) (*ExportLayoutOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrLayoutInvalid
	}
	snap, err := s.Repos.Layout.Load(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	data, err := layoutdoc.Encode(snap)
	if err != nil {
		return nil, err
	}
	return &ExportLayoutOutput{Data: data, Filename: layoutdoc.Filename(snap.Name)}, nil
}
