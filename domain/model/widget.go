package model

// WidgetInstance is one placed occurrence of a widget type on a dashboard.
// InstanceID is a stable opaque identity; it survives saves, loads, and
// dashboard renames. Closed marks a soft-deleted widget that remains
// addressable for reopening but is excluded from rendering and exports.
type WidgetInstance struct {
	InstanceID string
	WidgetID   string
	X          int
	Y          int
	W          int
	H          int
	Props      map[string]any
	Order      int
	Closed     bool
}

// OrderUnset marks a widget whose persisted form carried no order value.
// Sanitization renumbers only these entries; explicit orders are preserved.
const OrderUnset = -1

// Clone returns a deep copy, including the props bag.
func (w WidgetInstance) Clone() WidgetInstance {
	cp := w
	cp.Props = cloneProps(w.Props)
	return cp
}

// CloneWidgets deep-copies an arrangement.
func CloneWidgets(items []WidgetInstance) []WidgetInstance {
	if items == nil {
		return nil
	}
	out := make([]WidgetInstance, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

func cloneProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	cp := make(map[string]any, len(props))
	for k, v := range props {
		cp[k] = v
	}
	return cp
}
