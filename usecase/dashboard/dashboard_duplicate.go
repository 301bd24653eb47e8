package dashboard

import (
	"context"
	"time"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/internal/naming"
)

// DuplicateDashboardInput identifies the dashboard to clone.
type DuplicateDashboardInput struct {
	// DashboardID is the dashboard identifier.
	DashboardID string `json:"dashboard_id"`
}

// DuplicateDashboardOutput wraps the clone.
type DuplicateDashboardOutput struct {
	// Duplicated is false when the ID is absent.
	Duplicated bool `json:"duplicated"`
	// Dashboard is the activated clone (nil when Duplicated is false).
	Dashboard *model.Dashboard `json:"dashboard,omitempty"`
}

// DuplicateDashboard clones a dashboard: every widget instance gets a fresh
// identity but keeps its configuration, position, and visibility. The clone
// is appended and becomes the active dashboard.
func (s *Store) DuplicateDashboard(ctx context.Context, in *DuplicateDashboardInput) (*DuplicateDashboardOutput, error) {
	if in == nil || in.DashboardID == "" {
		return &DuplicateDashboardOutput{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	s.fold()
	src := s.ws.Dashboard(in.DashboardID)
	if src == nil {
		return &DuplicateDashboardOutput{}, nil
	}

	now := time.Now().UTC()
	clone := src.Clone()
	clone.ID = naming.DashboardID()
	clone.Name = src.Name + " Copy"
	clone.CreatedAt = now
	clone.UpdatedAt = now
	for i := range clone.Widgets {
		clone.Widgets[i].InstanceID = naming.InstanceID()
	}

	s.ws.Dashboards = append(s.ws.Dashboards, clone)
	s.ws.ActiveDashboardID = clone.ID
	s.projectActive()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	cp := clone.Clone()
	return &DuplicateDashboardOutput{Duplicated: true, Dashboard: &cp}, nil
}
