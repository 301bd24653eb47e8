package wsdoc

import "github.com/deckops/deckops/domain/model"

// FromModel converts a domain workspace to its document representation.
func FromModel(ws *model.Workspace) *Document {
	doc := &Document{
		Version:           Version,
		ActiveDashboardID: ws.ActiveDashboardID,
		Dashboards:        make([]Dashboard, 0, len(ws.Dashboards)),
	}
	for _, d := range ws.Dashboards {
		doc.Dashboards = append(doc.Dashboards, DashboardFromModel(d))
	}
	return doc
}

// DashboardFromModel converts one dashboard to its document slot.
func DashboardFromModel(d model.Dashboard) Dashboard {
	out := Dashboard{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Layout:    make([]WidgetItem, 0, len(d.Widgets)),
	}
	for _, it := range d.Widgets {
		order, w, h := it.Order, it.W, it.H
		out.Layout = append(out.Layout, WidgetItem{
			I:        it.InstanceID,
			WidgetID: it.WidgetID,
			W:        &w,
			H:        &h,
			X:        it.X,
			Y:        it.Y,
			Props:    it.Props,
			Closed:   it.Closed,
			Order:    &order,
		})
	}
	return out
}

// ToModel converts a decoded document to a domain workspace. Absent
// dimensions and order values survive as unset markers; the result still
// needs sanitization before use.
func (doc *Document) ToModel() *model.Workspace {
	ws := &model.Workspace{
		Version:           doc.Version,
		ActiveDashboardID: doc.ActiveDashboardID,
		Dashboards:        make([]model.Dashboard, 0, len(doc.Dashboards)),
	}
	for _, d := range doc.Dashboards {
		ws.Dashboards = append(ws.Dashboards, d.ToModel())
	}
	return ws
}

// ToModel converts one dashboard slot to its domain form.
func (d Dashboard) ToModel() model.Dashboard {
	out := model.Dashboard{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Widgets:   make([]model.WidgetInstance, 0, len(d.Layout)),
	}
	for _, it := range d.Layout {
		out.Widgets = append(out.Widgets, model.WidgetInstance{
			InstanceID: it.I,
			WidgetID:   it.WidgetID,
			X:          it.X,
			Y:          it.Y,
			W:          intOr(it.W, 0),
			H:          intOr(it.H, 0),
			Props:      it.Props,
			Order:      intOr(it.Order, model.OrderUnset),
			Closed:     it.Closed,
		})
	}
	return out
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
