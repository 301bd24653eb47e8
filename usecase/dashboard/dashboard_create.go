package dashboard

import (
	"context"
	"time"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/internal/naming"
)

// CreateDashboardInput carries the new dashboard's name.
type CreateDashboardInput struct {
	// Name falls back to the untitled default when empty.
	Name string `json:"name"`
}

// CreateDashboardOutput wraps the created dashboard.
type CreateDashboardOutput struct {
	// Dashboard is the newly created, empty dashboard.
	Dashboard *model.Dashboard `json:"dashboard"`
}

// CreateDashboard appends an empty dashboard to the workspace. The current
// live arrangement is flushed into the outgoing active dashboard first; the
// new dashboard is not activated.
func (s *Store) CreateDashboard(ctx context.Context, in *CreateDashboardInput) (*CreateDashboardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	name := ""
	if in != nil {
		name = in.Name
	}
	if name == "" {
		name = model.DefaultDashboardName
	}
	now := time.Now().UTC()
	d := model.Dashboard{
		ID:        naming.DashboardID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.fold()
	s.ws.Dashboards = append(s.ws.Dashboards, d)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	cp := d.Clone()
	return &CreateDashboardOutput{Dashboard: &cp}, nil
}
