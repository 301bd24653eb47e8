package dashboard

import "context"

// CloseWidgetInput identifies the instance to close.
type CloseWidgetInput struct {
	// InstanceID is the widget instance identifier.
	InstanceID string `json:"instance_id"`
}

// CloseWidgetOutput reports whether anything changed.
type CloseWidgetOutput struct {
	// Closed is false when the instance ID is absent.
	Closed bool `json:"closed"`
}

// CloseWidget soft-deletes a widget instance. The instance stays in the
// document with its configuration so it can be reopened later; an absent ID
// is a no-op.
func (s *Store) CloseWidget(ctx context.Context, in *CloseWidgetInput) (*CloseWidgetOutput, error) {
	if in == nil || in.InstanceID == "" {
		return &CloseWidgetOutput{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	for i := range s.live {
		if s.live[i].InstanceID == in.InstanceID {
			s.live[i].Closed = true
			s.touchActive()
			if err := s.persist(ctx); err != nil {
				return nil, err
			}
			return &CloseWidgetOutput{Closed: true}, nil
		}
	}
	return &CloseWidgetOutput{}, nil
}
