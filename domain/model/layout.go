package model

import "time"

// LayoutVersion is the current portable layout schema version.
const LayoutVersion = 1

// PlacedWidget is one item of a portable layout snapshot. It is a
// WidgetInstance without the Closed flag: exports only ever contain visible
// widgets.
type PlacedWidget struct {
	InstanceID string
	WidgetID   string
	Title      string
	X          int
	Y          int
	W          int
	H          int
	Props      map[string]any
	Order      int
}

// Clone returns a deep copy, including the props bag.
func (p PlacedWidget) Clone() PlacedWidget {
	cp := p
	cp.Props = cloneProps(p.Props)
	return cp
}

// LayoutSnapshot is a named, dashboard-independent saved arrangement. It can
// be applied to any dashboard or exported as a *.layout.json file.
type LayoutSnapshot struct {
	Version   int
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []PlacedWidget
}

// Clone returns a deep copy of the snapshot.
func (s LayoutSnapshot) Clone() LayoutSnapshot {
	cp := s
	cp.Items = make([]PlacedWidget, len(s.Items))
	for i := range s.Items {
		cp.Items[i] = s.Items[i].Clone()
	}
	return cp
}

// LayoutInfo is the listing view of a stored snapshot.
type LayoutInfo struct {
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Count     int
}
