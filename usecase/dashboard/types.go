package dashboard

import (
	"errors"
	"sync"

	"github.com/deckops/deckops/domain"
	"github.com/deckops/deckops/domain/model"
)

// Repos holds repositories needed for dashboard store operations.
type Repos struct {
	Workspace domain.WorkspaceRepository
	Layout    domain.LayoutRepository
}

// ErrNotReady is returned by operations invoked before Open.
var ErrNotReady = errors.New("dashboard store not opened")

// Store is the single source of truth for the live widget arrangement and
// the synchronization point between that arrangement and the persisted
// workspace document. Every operation mutates the live arrangement, folds
// it back into the active dashboard inside the workspace, and persists the
// document; callers observe no partial state in between. A single mutex
// serializes operations so two of them never interleave.
type Store struct {
	Repos *Repos

	mu    sync.Mutex
	reg   model.Registry
	key   model.WorkspaceKey
	ws    *model.Workspace
	live  []model.WidgetInstance
	ready bool
}

// NewStore wires repositories, the widget registry, and the workspace key.
// The store is unusable until Open succeeds.
func NewStore(repos *Repos, reg model.Registry, key model.WorkspaceKey) *Store {
	return &Store{Repos: repos, reg: reg, key: key}
}
