package dashboard

import "context"

// ReopenWidgetInput identifies the instance to reopen.
type ReopenWidgetInput struct {
	// InstanceID is the widget instance identifier.
	InstanceID string `json:"instance_id"`
}

// ReopenWidgetOutput reports whether anything changed.
type ReopenWidgetOutput struct {
	// Reopened is false when the instance ID is absent.
	Reopened bool `json:"reopened"`
}

// ReopenWidget clears the soft-delete flag of a closed widget instance,
// restoring it with the configuration it had when closed. An absent ID is a
// no-op.
func (s *Store) ReopenWidget(ctx context.Context, in *ReopenWidgetInput) (*ReopenWidgetOutput, error) {
	if in == nil || in.InstanceID == "" {
		return &ReopenWidgetOutput{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	for i := range s.live {
		if s.live[i].InstanceID == in.InstanceID {
			s.live[i].Closed = false
			s.touchActive()
			if err := s.persist(ctx); err != nil {
				return nil, err
			}
			return &ReopenWidgetOutput{Reopened: true}, nil
		}
	}
	return &ReopenWidgetOutput{}, nil
}
