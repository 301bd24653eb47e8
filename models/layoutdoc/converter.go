package layoutdoc

import "github.com/deckops/deckops/domain/model"

// FromModel converts a domain snapshot to its file representation.
func FromModel(snap *model.LayoutSnapshot) *Document {
	doc := &Document{
		Version:   Version,
		Name:      snap.Name,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
		Items:     make([]Item, 0, len(snap.Items)),
	}
	for _, it := range snap.Items {
		order, w, h := it.Order, it.W, it.H
		doc.Items = append(doc.Items, Item{
			ID:         it.WidgetID,
			InstanceID: it.InstanceID,
			Title:      it.Title,
			Props:      it.Props,
			Order:      &order,
			X:          it.X,
			Y:          it.Y,
			W:          &w,
			H:          &h,
		})
	}
	return doc
}

// ToModel converts a decoded file to a domain snapshot. Absent order values
// become model.OrderUnset; absent dimensions become zero so sanitization can
// substitute the registry defaults.
func (d *Document) ToModel() *model.LayoutSnapshot {
	snap := &model.LayoutSnapshot{
		Version:   d.Version,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Items:     make([]model.PlacedWidget, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		snap.Items = append(snap.Items, model.PlacedWidget{
			InstanceID: it.InstanceID,
			WidgetID:   it.ID,
			Title:      it.Title,
			X:          it.X,
			Y:          it.Y,
			W:          intOr(it.W, 0),
			H:          intOr(it.H, 0),
			Props:      it.Props,
			Order:      intOr(it.Order, model.OrderUnset),
		})
	}
	return snap
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
