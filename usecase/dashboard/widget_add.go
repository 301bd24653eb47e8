package dashboard

import (
	"context"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/internal/naming"
)

// AddWidgetInput identifies the widget type to place.
type AddWidgetInput struct {
	// WidgetID is the registry type ID.
	WidgetID string `json:"widget_id"`
}

// AddWidgetOutput reports the placed instance, if any.
type AddWidgetOutput struct {
	// Added is false when the widget type is unknown to the registry.
	Added bool `json:"added"`
	// Widget is the placed instance (nil when Added is false).
	Widget *model.WidgetInstance `json:"widget,omitempty"`
}

// AddWidget appends a new instance of a registered widget type to the live
// arrangement: fresh instance ID, order equal to the current count, default
// size from the registry, empty props. An unknown type is a no-op.
func (s *Store) AddWidget(ctx context.Context, in *AddWidgetInput) (*AddWidgetOutput, error) {
	if in == nil || in.WidgetID == "" {
		return &AddWidgetOutput{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	def, ok := s.reg.Lookup(in.WidgetID)
	if !ok {
		return &AddWidgetOutput{}, nil
	}

	y := 0
	for _, w := range s.live {
		if w.Y+w.H > y {
			y = w.Y + w.H
		}
	}
	inst := model.WidgetInstance{
		InstanceID: naming.InstanceID(),
		WidgetID:   def.ID,
		X:          0,
		Y:          y,
		W:          def.DefaultW,
		H:          def.DefaultH,
		Props:      map[string]any{},
		Order:      len(s.live),
	}
	s.live = append(s.live, inst)
	s.touchActive()
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	cp := inst.Clone()
	return &AddWidgetOutput{Added: true, Widget: &cp}, nil
}
