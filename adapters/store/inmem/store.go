// Package inmem provides mutex-guarded in-memory repositories. They back
// tests and the ephemeral `mem:` database URL.
package inmem

import "github.com/deckops/deckops/domain"

// Store bundles the in-memory repositories.
type Store struct {
	WorkspaceRepo *WorkspaceRepository
	LayoutRepo    *LayoutRepository
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	return &Store{
		WorkspaceRepo: NewWorkspaceRepository(),
		LayoutRepo:    NewLayoutRepository(),
	}
}

// Repositories returns the domain view of the store.
func (s *Store) Repositories() *domain.Repositories {
	return &domain.Repositories{
		Workspace: s.WorkspaceRepo,
		Layout:    s.LayoutRepo,
	}
}
