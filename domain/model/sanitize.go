package model

import (
	"time"

	"github.com/deckops/deckops/internal/naming"
)

// SanitizeWorkspace repairs an arbitrary workspace value so that every
// invariant holds: at least one dashboard, a resolvable active dashboard ID,
// per-dashboard widget validity, and the current schema version. A nil input
// yields a freshly seeded workspace. The function never fails; malformed
// entries are dropped or defaulted, not rejected.
//
// Sanitization is idempotent: applying it to its own output is a no-op
// apart from identity generation for entries that lacked one, which the
// first pass already performed.
func SanitizeWorkspace(ws *Workspace, reg Registry) *Workspace {
	if ws == nil {
		return SeedWorkspace(reg)
	}
	out := ws.Clone()
	out.Version = WorkspaceVersion

	now := time.Now().UTC()
	dashboards := make([]Dashboard, 0, len(out.Dashboards))
	for i := range out.Dashboards {
		dashboards = append(dashboards, sanitizeDashboard(out.Dashboards[i], reg, now))
	}
	if len(dashboards) == 0 {
		dashboards = []Dashboard{SeedDashboard(reg)}
	}
	out.Dashboards = dashboards

	if out.Dashboard(out.ActiveDashboardID) == nil {
		out.ActiveDashboardID = out.Dashboards[0].ID
	}
	return &out
}

func sanitizeDashboard(d Dashboard, reg Registry, now time.Time) Dashboard {
	if d.ID == "" {
		d.ID = naming.DashboardID()
	}
	if d.Name == "" {
		d.Name = DefaultDashboardName
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
	d.Widgets = SanitizeArrangement(d.Widgets, reg)
	return d
}

// SanitizeArrangement applies the per-widget repair rules to a bare
// arrangement: widgets with an unknown type are dropped, missing dimensions
// are filled from the registry defaults, duplicate instance IDs keep the
// first occurrence, and only widgets without an explicit order are
// renumbered.
func SanitizeArrangement(items []WidgetInstance, reg Registry) []WidgetInstance {
	out := make([]WidgetInstance, 0, len(items))
	seen := make(map[string]bool, len(items))
	maxOrder := OrderUnset
	for _, it := range items {
		def, ok := reg.Lookup(it.WidgetID)
		if !ok {
			continue
		}
		if it.InstanceID == "" {
			it.InstanceID = naming.InstanceID()
		}
		if seen[it.InstanceID] {
			continue
		}
		seen[it.InstanceID] = true
		if it.W <= 0 {
			it.W = def.DefaultW
		}
		if it.H <= 0 {
			it.H = def.DefaultH
		}
		if it.X < 0 {
			it.X = 0
		}
		if it.Y < 0 {
			it.Y = 0
		}
		if it.Order > maxOrder {
			maxOrder = it.Order
		}
		out = append(out, it)
	}
	// Explicit orders are the user's arrangement; only fill the gaps.
	for i := range out {
		if out[i].Order < 0 {
			maxOrder++
			out[i].Order = maxOrder
		}
	}
	return out
}

// SanitizeSnapshot fills missing item dimensions from the registry defaults
// so a snapshot entering persistence carries concrete sizes. Items with an
// unknown widget type are kept untouched: the registry may learn the type
// later, and apply-time skipping already guards the live arrangement.
func SanitizeSnapshot(snap *LayoutSnapshot, reg Registry) *LayoutSnapshot {
	out := snap.Clone()
	for i := range out.Items {
		def, ok := reg.Lookup(out.Items[i].WidgetID)
		if !ok {
			continue
		}
		if out.Items[i].W <= 0 {
			out.Items[i].W = def.DefaultW
		}
		if out.Items[i].H <= 0 {
			out.Items[i].H = def.DefaultH
		}
	}
	return &out
}

// MigrateWorkspace maps a persisted workspace onto the current schema.
// Anything other than the current version is replaced by a fresh seed; the
// engine deliberately trades legacy content for a known-good document
// instead of attempting a field-by-field upgrade. Returns the workspace and
// whether a replacement happened.
func MigrateWorkspace(ws *Workspace, reg Registry) (*Workspace, bool) {
	if ws == nil || ws.Version != WorkspaceVersion {
		return SeedWorkspace(reg), true
	}
	return SanitizeWorkspace(ws, reg), false
}

// SeedWorkspace builds the workspace created on first use: one dashboard
// holding the registry's starter arrangement.
func SeedWorkspace(reg Registry) *Workspace {
	d := SeedDashboard(reg)
	return &Workspace{
		Version:           WorkspaceVersion,
		ActiveDashboardID: d.ID,
		Dashboards:        []Dashboard{d},
	}
}

// SeedDashboard builds the default dashboard with the starter arrangement.
func SeedDashboard(reg Registry) Dashboard {
	now := time.Now().UTC()
	return Dashboard{
		ID:        naming.DashboardID(),
		Name:      SeedDashboardName,
		CreatedAt: now,
		UpdatedAt: now,
		Widgets:   SeedArrangement(reg),
	}
}

// SeedArrangement instantiates the registry's starter widget list, stacked
// vertically from the origin.
func SeedArrangement(reg Registry) []WidgetInstance {
	var out []WidgetInstance
	y := 0
	for _, id := range reg.Starter() {
		def, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		out = append(out, WidgetInstance{
			InstanceID: naming.InstanceID(),
			WidgetID:   def.ID,
			X:          0,
			Y:          y,
			W:          def.DefaultW,
			H:          def.DefaultH,
			Props:      map[string]any{},
			Order:      len(out),
		})
		y += def.DefaultH
	}
	return out
}
