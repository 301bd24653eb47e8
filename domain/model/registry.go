package model

// WidgetDef describes one entry of the widget registry catalog.
// The engine only reads identity, title, and default dimensions; rendering
// concerns (component loaders) belong to the consuming UI and never appear
// here.
type WidgetDef struct {
	ID       string
	Title    string
	Group    string
	DefaultW int
	DefaultH int
}

// Registry is the read-only widget catalog consumed by sanitization and by
// the dashboard store. Implementations must be safe for concurrent reads.
type Registry interface {
	// Lookup returns the definition for a widget type ID.
	Lookup(id string) (WidgetDef, bool)
	// Defs returns all known definitions in stable order.
	Defs() []WidgetDef
	// Starter returns the widget type IDs seeded into a fresh dashboard.
	Starter() []string
}
