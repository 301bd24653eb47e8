package dashboard

import (
	"context"
	"time"

	"github.com/deckops/deckops/domain/model"
)

// RenameDashboardInput identifies the dashboard and its new name.
type RenameDashboardInput struct {
	// DashboardID is the dashboard identifier.
	DashboardID string `json:"dashboard_id"`
	// Name falls back to the untitled default when empty.
	Name string `json:"name"`
}

// RenameDashboardOutput wraps the renamed dashboard.
type RenameDashboardOutput struct {
	// Renamed is false when the dashboard ID is absent.
	Renamed bool `json:"renamed"`
	// Dashboard is the updated entity (nil when Renamed is false).
	Dashboard *model.Dashboard `json:"dashboard,omitempty"`
}

// RenameDashboard changes a dashboard's name. An empty name becomes the
// untitled default, never the empty string; an unknown ID is a no-op.
func (s *Store) RenameDashboard(ctx context.Context, in *RenameDashboardInput) (*RenameDashboardOutput, error) {
	if in == nil || in.DashboardID == "" {
		return &RenameDashboardOutput{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	d := s.ws.Dashboard(in.DashboardID)
	if d == nil {
		return &RenameDashboardOutput{}, nil
	}
	name := in.Name
	if name == "" {
		name = model.DefaultDashboardName
	}
	d.Name = name
	d.UpdatedAt = time.Now().UTC()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	cp := d.Clone()
	return &RenameDashboardOutput{Renamed: true, Dashboard: &cp}, nil
}
