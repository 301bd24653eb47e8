package dashboard

import "context"

// ActivateDashboardInput identifies the dashboard to switch to.
type ActivateDashboardInput struct {
	// DashboardID is the dashboard identifier.
	DashboardID string `json:"dashboard_id"`
}

// ActivateDashboardOutput reports whether the switch happened.
type ActivateDashboardOutput struct {
	// Activated is false when the ID is absent or already active.
	Activated bool `json:"activated"`
	// ActiveDashboardID is the active dashboard after the operation.
	ActiveDashboardID string `json:"active_dashboard_id"`
}

// ActivateDashboard switches the active dashboard. The live arrangement is
// flushed into the outgoing dashboard before the switch; skipping that
// flush would silently discard its latest edits. The incoming dashboard's
// widgets are then projected into the live arrangement.
func (s *Store) ActivateDashboard(ctx context.Context, in *ActivateDashboardInput) (*ActivateDashboardOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	out := &ActivateDashboardOutput{ActiveDashboardID: s.ws.ActiveDashboardID}
	if in == nil || in.DashboardID == "" || in.DashboardID == s.ws.ActiveDashboardID {
		return out, nil
	}
	if s.ws.Dashboard(in.DashboardID) == nil {
		return out, nil
	}

	s.fold()
	s.ws.ActiveDashboardID = in.DashboardID
	s.projectActive()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	out.Activated = true
	out.ActiveDashboardID = in.DashboardID
	return out, nil
}
