package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/models/wsdoc"
)

// ImportWorkspaceInput carries a portable workspace file payload.
type ImportWorkspaceInput struct {
	// Data is the *.workspace.json payload.
	Data []byte `json:"data"`
	// Overwrite replaces the stored document; without it the payload is
	// only validated.
	Overwrite bool `json:"overwrite"`
}

// ImportWorkspaceOutput reports the outcome.
type ImportWorkspaceOutput struct {
	// Applied is false when Overwrite was not set.
	Applied bool `json:"applied"`
	// Dashboards is the imported document's dashboard count.
	Dashboards int `json:"dashboards"`
}

// ImportWorkspace parses a portable workspace payload and, when Overwrite
// is set, replaces the stored document and reprojects the live arrangement
// from its active dashboard. An unsupported version or malformed payload
// mutates nothing.
func (s *Store) ImportWorkspace(ctx context.Context, in *ImportWorkspaceInput) (*ImportWorkspaceOutput, error) {
	if in == nil || len(in.Data) == 0 {
		return nil, model.ErrWorkspaceInvalid
	}
	imported, err := wsdoc.Decode(in.Data)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	sanitized := model.SanitizeWorkspace(imported, s.reg)
	if !in.Overwrite {
		return &ImportWorkspaceOutput{Dashboards: len(sanitized.Dashboards)}, nil
	}

	s.ws = sanitized
	s.projectActive()
	if err := s.Repos.Workspace.Save(ctx, s.key, s.ws); err != nil {
		return nil, err
	}
	return &ImportWorkspaceOutput{Applied: true, Dashboards: len(s.ws.Dashboards)}, nil
}
