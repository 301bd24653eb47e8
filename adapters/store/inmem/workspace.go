package inmem

import (
	"context"
	"sync"

	"github.com/deckops/deckops/domain"
	"github.com/deckops/deckops/domain/model"
)

// WorkspaceRepository is a thread-safe in-memory implementation.
type WorkspaceRepository struct {
	mu   sync.RWMutex
	docs map[model.WorkspaceKey]*model.Workspace
}

func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{
		docs: make(map[model.WorkspaceKey]*model.Workspace),
	}
}

func (r *WorkspaceRepository) Load(_ context.Context, key model.WorkspaceKey) (*model.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.docs[key]
	if !ok {
		return nil, model.ErrWorkspaceNotFound
	}
	// Copy to avoid external mutation.
	cp := ws.Clone()
	return &cp, nil
}

func (r *WorkspaceRepository) Save(_ context.Context, key model.WorkspaceKey, ws *model.Workspace) error {
	if ws == nil {
		return model.ErrWorkspaceInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := ws.Clone()
	r.docs[key] = &cp
	return nil
}

// Compile-time assertion.
var _ domain.WorkspaceRepository = (*WorkspaceRepository)(nil)
