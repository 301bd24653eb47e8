package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/internal/logging"
)

// Open loads or seeds the workspace and projects the active dashboard's
// widgets into the live arrangement (Bootstrapping to Ready). A workspace
// persisted under an older schema version is replaced by a fresh seed; the
// repaired or seeded document is persisted before Open returns.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.Repos.Workspace.Load(ctx, s.key)
	switch {
	case errors.Is(err, model.ErrWorkspaceNotFound):
		stored = nil
	case errors.Is(err, model.ErrMalformedDocument):
		// A corrupt document degrades to a fresh seed rather than failing.
		logging.FromContext(ctx).Warn(ctx, "workspace document corrupt, reseeding", "err", err.Error())
		stored = nil
	case err != nil:
		return err
	}

	ws, replaced := model.MigrateWorkspace(stored, s.reg)
	s.ws = ws
	s.projectActive()
	s.ready = true

	if replaced || stored == nil {
		if err := s.Repos.Workspace.Save(ctx, s.key, s.ws); err != nil {
			return err
		}
	}
	return nil
}

// Arrangement returns a deep copy of the live arrangement, closed widgets
// included.
func (s *Store) Arrangement() []model.WidgetInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneWidgets(s.live)
}

// Workspace returns a deep copy of the current workspace document with the
// live arrangement folded in.
func (s *Store) Workspace() *model.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ws == nil {
		return nil
	}
	s.fold()
	cp := s.ws.Clone()
	return &cp
}

// Key returns the workspace key this store operates on.
func (s *Store) Key() model.WorkspaceKey { return s.key }

// fold projects the live arrangement into the active dashboard's slot.
// Callers hold the mutex.
func (s *Store) fold() {
	if d := s.ws.ActiveDashboard(); d != nil {
		d.Widgets = model.CloneWidgets(s.live)
	}
}

// projectActive projects the active dashboard's widgets into the live
// arrangement. Callers hold the mutex.
func (s *Store) projectActive() {
	if d := s.ws.ActiveDashboard(); d != nil {
		s.live = model.CloneWidgets(d.Widgets)
	} else {
		s.live = nil
	}
}

// touchActive bumps the active dashboard's modification time. Callers hold
// the mutex.
func (s *Store) touchActive() {
	if d := s.ws.ActiveDashboard(); d != nil {
		d.UpdatedAt = time.Now().UTC()
	}
}

// persist folds the live arrangement and saves the workspace document. The
// in-memory state is already updated when persistence fails; the error
// propagates to the triggering caller and is not retried.
func (s *Store) persist(ctx context.Context) error {
	s.fold()
	return s.Repos.Workspace.Save(ctx, s.key, s.ws)
}

func (s *Store) requireReady() error {
	if !s.ready {
		return ErrNotReady
	}
	return nil
}
