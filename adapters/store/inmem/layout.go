package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/deckops/deckops/domain"
	"github.com/deckops/deckops/domain/model"
)

// LayoutRepository is a thread-safe in-memory implementation.
type LayoutRepository struct {
	mu    sync.RWMutex
	snaps map[string]*model.LayoutSnapshot
}

func NewLayoutRepository() *LayoutRepository {
	return &LayoutRepository{
		snaps: make(map[string]*model.LayoutSnapshot),
	}
}

func (r *LayoutRepository) List(_ context.Context) ([]*model.LayoutInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.LayoutInfo, 0, len(r.snaps))
	for _, s := range r.snaps {
		out = append(out, &model.LayoutInfo{
			Name:      s.Name,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
			Count:     len(s.Items),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *LayoutRepository) Save(_ context.Context, snap *model.LayoutSnapshot, overwrite bool) error {
	if snap == nil || snap.Name == "" {
		return model.ErrLayoutInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	cp := snap.Clone()
	cp.UpdatedAt = now
	if existing, ok := r.snaps[cp.Name]; ok {
		if !overwrite {
			return model.ErrDuplicateName
		}
		cp.CreatedAt = existing.CreatedAt
	} else if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	r.snaps[cp.Name] = &cp
	return nil
}

func (r *LayoutRepository) Load(_ context.Context, name string) (*model.LayoutSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.snaps[name]
	if !ok {
		return nil, model.ErrLayoutNotFound
	}
	cp := s.Clone()
	return &cp, nil
}

func (r *LayoutRepository) Rename(_ context.Context, oldName, newName string) error {
	if newName == "" {
		return model.ErrLayoutInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.snaps[oldName]
	if !ok {
		return model.ErrLayoutNotFound
	}
	if oldName == newName {
		return nil
	}
	if _, exists := r.snaps[newName]; exists {
		return model.ErrDuplicateName
	}
	cp := s.Clone()
	cp.Name = newName
	cp.UpdatedAt = time.Now().UTC()
	r.snaps[newName] = &cp
	delete(r.snaps, oldName)
	return nil
}

func (r *LayoutRepository) Remove(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snaps, name)
	return nil
}

// Compile-time assertion.
var _ domain.LayoutRepository = (*LayoutRepository)(nil)
