package model

import "sort"

// ApplyMode selects how a snapshot lands on an existing arrangement.
type ApplyMode string

const (
	// ApplyReplace discards the current arrangement and repositions the
	// snapshot's widgets from the origin.
	ApplyReplace ApplyMode = "replace"
	// ApplyAppend stacks the snapshot's widgets below the current
	// arrangement's maximum extent so nothing overlaps.
	ApplyAppend ApplyMode = "append"
)

// Valid reports whether the mode is one of the supported apply modes.
func (m ApplyMode) Valid() bool {
	return m == ApplyReplace || m == ApplyAppend
}

// ApplySnapshot merges a layout snapshot into an arrangement according to
// mode. Snapshot items whose widget type is unknown to the registry are
// skipped, not fatal; their type IDs are returned for diagnostics.
func ApplySnapshot(current []WidgetInstance, snap *LayoutSnapshot, mode ApplyMode, reg Registry) (result []WidgetInstance, skipped []string) {
	items := make([]PlacedWidget, 0, len(snap.Items))
	for _, it := range snap.Items {
		def, ok := reg.Lookup(it.WidgetID)
		if !ok {
			skipped = append(skipped, it.WidgetID)
			continue
		}
		c := it.Clone()
		if c.W <= 0 {
			c.W = def.DefaultW
		}
		if c.H <= 0 {
			c.H = def.DefaultH
		}
		items = append(items, c)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	switch mode {
	case ApplyAppend:
		result = CloneWidgets(current)
		baseOrder := 0
		baseY := 0
		for _, w := range result {
			if w.Order >= baseOrder {
				baseOrder = w.Order + 1
			}
			if w.Y+w.H > baseY {
				baseY = w.Y + w.H
			}
		}
		minY := minItemY(items)
		for i, it := range items {
			result = append(result, placedToInstance(it, baseY+it.Y-minY, baseOrder+i))
		}
	default: // ApplyReplace
		minX, minY := minItemX(items), minItemY(items)
		result = make([]WidgetInstance, 0, len(items))
		for i, it := range items {
			w := placedToInstance(it, it.Y-minY, i)
			w.X = it.X - minX
			result = append(result, w)
		}
	}
	return result, skipped
}

func placedToInstance(p PlacedWidget, y, order int) WidgetInstance {
	props := p.Props
	if props == nil {
		props = map[string]any{}
	}
	return WidgetInstance{
		InstanceID: p.InstanceID,
		WidgetID:   p.WidgetID,
		X:          p.X,
		Y:          y,
		W:          p.W,
		H:          p.H,
		Props:      props,
		Order:      order,
		Closed:     false,
	}
}

func minItemY(items []PlacedWidget) int {
	if len(items) == 0 {
		return 0
	}
	min := items[0].Y
	for _, it := range items[1:] {
		if it.Y < min {
			min = it.Y
		}
	}
	return min
}

func minItemX(items []PlacedWidget) int {
	if len(items) == 0 {
		return 0
	}
	min := items[0].X
	for _, it := range items[1:] {
		if it.X < min {
			min = it.X
		}
	}
	return min
}

// SnapshotFromArrangement builds a portable snapshot from the visible part
// of an arrangement, sorted by order. Closed widgets never leave the
// workspace document.
func SnapshotFromArrangement(name string, items []WidgetInstance, reg Registry) *LayoutSnapshot {
	visible := make([]WidgetInstance, 0, len(items))
	for _, it := range items {
		if !it.Closed {
			visible = append(visible, it.Clone())
		}
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].Order < visible[j].Order })

	snap := &LayoutSnapshot{Version: LayoutVersion, Name: name}
	for _, it := range visible {
		title := ""
		if def, ok := reg.Lookup(it.WidgetID); ok {
			title = def.Title
		}
		snap.Items = append(snap.Items, PlacedWidget{
			InstanceID: it.InstanceID,
			WidgetID:   it.WidgetID,
			Title:      title,
			X:          it.X,
			Y:          it.Y,
			W:          it.W,
			H:          it.H,
			Props:      cloneProps(it.Props),
			Order:      it.Order,
		})
	}
	return snap
}
