package domain

import (
	"context"

	"github.com/deckops/deckops/domain/model"
)

// WorkspaceRepository stores the single workspace document per (tenant,
// user) key. Save is an unconditional overwrite: there is exactly one
// writer per key, and concurrent processes sharing a key get last-writer-
// wins semantics.
type WorkspaceRepository interface {
	// Load returns the stored workspace or model.ErrWorkspaceNotFound.
	Load(ctx context.Context, key model.WorkspaceKey) (*model.Workspace, error)
	// Save overwrites the stored document.
	Save(ctx context.Context, key model.WorkspaceKey, ws *model.Workspace) error
}

// LayoutRepository stores named, portable layout snapshots, independent of
// any dashboard.
type LayoutRepository interface {
	// List returns the stored snapshots' metadata, ordered by name.
	List(ctx context.Context) ([]*model.LayoutInfo, error)
	// Save inserts or replaces a snapshot. Without overwrite a name
	// collision fails with model.ErrDuplicateName.
	Save(ctx context.Context, snap *model.LayoutSnapshot, overwrite bool) error
	// Load returns the snapshot or model.ErrLayoutNotFound.
	Load(ctx context.Context, name string) (*model.LayoutSnapshot, error)
	// Rename renames in place, preserving CreatedAt and bumping UpdatedAt.
	// Fails with model.ErrDuplicateName if newName exists, or
	// model.ErrLayoutNotFound if oldName does not.
	Rename(ctx context.Context, oldName, newName string) error
	// Remove deletes a snapshot; removing an absent name is a no-op.
	Remove(ctx context.Context, name string) error
}

// Repositories groups the repositories consumed by the dashboard store.
type Repositories struct {
	Workspace WorkspaceRepository
	Layout    LayoutRepository
}
