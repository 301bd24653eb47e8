package dashboard

import (
	"context"
	"sort"

	"github.com/deckops/deckops/domain/model"
)

// ListWidgetsInput defines filters for listing the live arrangement.
type ListWidgetsInput struct {
	// IncludeClosed also returns soft-deleted instances.
	IncludeClosed bool `json:"include_closed"`
}

// ListWidgetsOutput wraps the listed widget instances.
type ListWidgetsOutput struct {
	// Items is the arrangement sorted by order.
	Items []model.WidgetInstance `json:"items"`
}

// ListWidgets returns the active dashboard's live arrangement sorted by
// order, visible widgets only unless IncludeClosed is set.
func (s *Store) ListWidgets(_ context.Context, in *ListWidgetsInput) (*ListWidgetsOutput, error) {
	includeClosed := in != nil && in.IncludeClosed
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	items := make([]model.WidgetInstance, 0, len(s.live))
	for _, w := range s.live {
		if w.Closed && !includeClosed {
			continue
		}
		items = append(items, w.Clone())
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return &ListWidgetsOutput{Items: items}, nil
}
