package dashboard

import "context"

// DeleteDashboardInput identifies the dashboard to delete.
type DeleteDashboardInput struct {
	// DashboardID is the dashboard identifier.
	DashboardID string `json:"dashboard_id"`
}

// DeleteDashboardOutput reports whether anything changed.
type DeleteDashboardOutput struct {
	// Deleted is false when the ID is absent or it names the last
	// remaining dashboard.
	Deleted bool `json:"deleted"`
	// ActiveDashboardID is the active dashboard after the operation.
	ActiveDashboardID string `json:"active_dashboard_id"`
}

// DeleteDashboard removes a dashboard. The workspace always keeps at least
// one dashboard, so deleting the last one is a no-op. Deleting the active
// dashboard re-activates the first remaining one and projects its widgets
// into the live arrangement.
func (s *Store) DeleteDashboard(ctx context.Context, in *DeleteDashboardInput) (*DeleteDashboardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	out := &DeleteDashboardOutput{ActiveDashboardID: s.ws.ActiveDashboardID}
	if in == nil || in.DashboardID == "" || len(s.ws.Dashboards) <= 1 {
		return out, nil
	}
	idx := -1
	for i := range s.ws.Dashboards {
		if s.ws.Dashboards[i].ID == in.DashboardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return out, nil
	}

	s.fold()
	s.ws.Dashboards = append(s.ws.Dashboards[:idx], s.ws.Dashboards[idx+1:]...)
	if s.ws.ActiveDashboardID == in.DashboardID {
		s.ws.ActiveDashboardID = s.ws.Dashboards[0].ID
		s.projectActive()
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	out.Deleted = true
	out.ActiveDashboardID = s.ws.ActiveDashboardID
	return out, nil
}
