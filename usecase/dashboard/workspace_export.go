package dashboard

import (
	"context"

	"github.com/deckops/deckops/models/wsdoc"
)

// ExportWorkspaceInput is empty; the export always covers the whole
// document.
type ExportWorkspaceInput struct{}

// ExportWorkspaceOutput carries the portable file payload.
type ExportWorkspaceOutput struct {
	// Data is the *.workspace.json payload.
	Data []byte `json:"data"`
	// Filename is the suggested export file name.
	Filename string `json:"filename"`
}

// ExportWorkspace flushes the live arrangement into the workspace document,
// persists it, and serializes the whole document to its portable payload.
func (s *Store) ExportWorkspace(ctx context.Context, _ *ExportWorkspaceInput) (*ExportWorkspaceOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	data, err := wsdoc.Encode(s.ws)
	if err != nil {
		return nil, err
	}
	name := s.key.User
	if name == "" {
		name = "workspace"
	}
	return &ExportWorkspaceOutput{Data: data, Filename: name + wsdoc.Extension}, nil
}
