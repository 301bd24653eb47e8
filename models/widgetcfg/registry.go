package widgetcfg

import "github.com/deckops/deckops/domain/model"

// staticRegistry is an immutable model.Registry built from a catalog.
type staticRegistry struct {
	defs    []model.WidgetDef
	byID    map[string]model.WidgetDef
	starter []string
}

// ToRegistry converts the catalog to a read-only registry. Entries without
// dimensions get the package defaults; starter IDs not present in the
// catalog are dropped.
func (r *Root) ToRegistry() model.Registry {
	reg := &staticRegistry{
		defs: make([]model.WidgetDef, 0, len(r.Widgets)),
		byID: make(map[string]model.WidgetDef, len(r.Widgets)),
	}
	for _, w := range r.Widgets {
		def := model.WidgetDef{
			ID:       w.ID,
			Title:    w.Title,
			Group:    w.Group,
			DefaultW: w.W,
			DefaultH: w.H,
		}
		if def.Title == "" {
			def.Title = def.ID
		}
		if def.DefaultW <= 0 {
			def.DefaultW = DefaultW
		}
		if def.DefaultH <= 0 {
			def.DefaultH = DefaultH
		}
		if _, dup := reg.byID[def.ID]; dup {
			continue
		}
		reg.byID[def.ID] = def
		reg.defs = append(reg.defs, def)
	}
	for _, id := range r.Starter {
		if _, ok := reg.byID[id]; ok {
			reg.starter = append(reg.starter, id)
		}
	}
	return reg
}

func (r *staticRegistry) Lookup(id string) (model.WidgetDef, bool) {
	def, ok := r.byID[id]
	return def, ok
}

func (r *staticRegistry) Defs() []model.WidgetDef {
	out := make([]model.WidgetDef, len(r.defs))
	copy(out, r.defs)
	return out
}

func (r *staticRegistry) Starter() []string {
	out := make([]string, len(r.starter))
	copy(out, r.starter)
	return out
}

var _ model.Registry = (*staticRegistry)(nil)
