package dashboard

import (
	"context"
	"time"
)

// ListDashboardsInput defines optional filters for listing dashboards.
type ListDashboardsInput struct{}

// DashboardInfo is the listing view of one dashboard.
type DashboardInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	Widgets   int       `json:"widgets"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListDashboardsOutput wraps listed dashboards.
type ListDashboardsOutput struct {
	// Dashboards is the collection in workspace order.
	Dashboards []DashboardInfo `json:"dashboards"`
}

// ListDashboards returns the workspace's dashboards in stored order with
// the live arrangement folded in, so widget counts reflect unsaved edits.
func (s *Store) ListDashboards(_ context.Context, _ *ListDashboardsInput) (*ListDashboardsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	s.fold()
	out := &ListDashboardsOutput{}
	for _, d := range s.ws.Dashboards {
		visible := 0
		for _, w := range d.Widgets {
			if !w.Closed {
				visible++
			}
		}
		out.Dashboards = append(out.Dashboards, DashboardInfo{
			ID:        d.ID,
			Name:      d.Name,
			Active:    d.ID == s.ws.ActiveDashboardID,
			Widgets:   visible,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}
	return out, nil
}
