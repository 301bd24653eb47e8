package model

import "time"

// DefaultDashboardName is substituted when a dashboard name is empty.
const DefaultDashboardName = "Untitled Dashboard"

// SeedDashboardName is the name of the dashboard created on first use.
const SeedDashboardName = "Default"

// Dashboard is a named, ordered arrangement of widget instances.
type Dashboard struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Widgets   []WidgetInstance
}

// Clone returns a deep copy of the dashboard and its arrangement.
func (d Dashboard) Clone() Dashboard {
	cp := d
	cp.Widgets = CloneWidgets(d.Widgets)
	return cp
}
