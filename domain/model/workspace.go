package model

// WorkspaceVersion is the current persisted workspace schema version.
const WorkspaceVersion = 1

// WorkspaceKey identifies the single workspace document of one user.
// The key must be stable across sessions for the same user.
type WorkspaceKey struct {
	Tenant string
	User   string
}

// Workspace is the full persisted document for one user: a non-empty set of
// dashboards plus which one is active. ActiveDashboardID always resolves to
// a member of Dashboards; sanitization repairs it otherwise.
type Workspace struct {
	Version           int
	ActiveDashboardID string
	Dashboards        []Dashboard
}

// Clone returns a deep copy of the workspace document.
func (w Workspace) Clone() Workspace {
	cp := w
	cp.Dashboards = make([]Dashboard, len(w.Dashboards))
	for i := range w.Dashboards {
		cp.Dashboards[i] = w.Dashboards[i].Clone()
	}
	return cp
}

// Dashboard returns the dashboard with the given ID, or nil.
func (w *Workspace) Dashboard(id string) *Dashboard {
	for i := range w.Dashboards {
		if w.Dashboards[i].ID == id {
			return &w.Dashboards[i]
		}
	}
	return nil
}

// ActiveDashboard returns the active dashboard. The sanitized workspace
// always has one.
func (w *Workspace) ActiveDashboard() *Dashboard {
	return w.Dashboard(w.ActiveDashboardID)
}
