package dashboard

import (
	"context"
	"testing"

	"github.com/deckops/deckops/adapters/store/inmem"
	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/models/widgetcfg"
)

var testKey = model.WorkspaceKey{Tenant: "t1", User: "u1"}

// newTestStore builds an opened store backed by in-memory repositories and
// the built-in widget catalog. The seeded workspace holds one dashboard
// with the starter arrangement (globe, news).
func newTestStore(t *testing.T) *Store {
	t.Helper()
	repos := inmem.NewStore().Repositories()
	s := NewStore(&Repos{Workspace: repos.Workspace, Layout: repos.Layout},
		widgetcfg.Builtin().ToRegistry(), testKey)
	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds and persists on first use", func(t *testing.T) {
		repos := inmem.NewStore().Repositories()
		s := NewStore(&Repos{Workspace: repos.Workspace, Layout: repos.Layout},
			widgetcfg.Builtin().ToRegistry(), testKey)
		if err := s.Open(ctx); err != nil {
			t.Fatalf("Open: %v", err)
		}
		if got := len(s.Arrangement()); got != 2 {
			t.Errorf("arrangement = %d widgets, want starter 2", got)
		}
		stored, err := repos.Workspace.Load(ctx, testKey)
		if err != nil {
			t.Fatalf("Load after seed: %v", err)
		}
		if len(stored.Dashboards) != 1 || stored.Dashboards[0].Name != model.SeedDashboardName {
			t.Errorf("persisted seed = %+v", stored.Dashboards)
		}
	})

	t.Run("loads an existing workspace", func(t *testing.T) {
		repos := inmem.NewStore().Repositories()
		reg := widgetcfg.Builtin().ToRegistry()
		saved := &model.Workspace{
			Version:           model.WorkspaceVersion,
			ActiveDashboardID: "d-1",
			Dashboards: []model.Dashboard{{
				ID: "d-1", Name: "Mine",
				Widgets: []model.WidgetInstance{
					{InstanceID: "w-1", WidgetID: "clock", W: 2, H: 2, Order: 0},
				},
			}},
		}
		if err := repos.Workspace.Save(ctx, testKey, saved); err != nil {
			t.Fatalf("Save: %v", err)
		}
		s := NewStore(&Repos{Workspace: repos.Workspace, Layout: repos.Layout}, reg, testKey)
		if err := s.Open(ctx); err != nil {
			t.Fatalf("Open: %v", err)
		}
		arr := s.Arrangement()
		if len(arr) != 1 || arr[0].InstanceID != "w-1" {
			t.Errorf("arrangement = %+v, want the stored widget", arr)
		}
	})

	t.Run("old schema version is reseeded", func(t *testing.T) {
		repos := inmem.NewStore().Repositories()
		reg := widgetcfg.Builtin().ToRegistry()
		saved := &model.Workspace{
			Version:           0,
			ActiveDashboardID: "d-old",
			Dashboards:        []model.Dashboard{{ID: "d-old", Name: "Legacy"}},
		}
		if err := repos.Workspace.Save(ctx, testKey, saved); err != nil {
			t.Fatalf("Save: %v", err)
		}
		s := NewStore(&Repos{Workspace: repos.Workspace, Layout: repos.Layout}, reg, testKey)
		if err := s.Open(ctx); err != nil {
			t.Fatalf("Open: %v", err)
		}
		ws := s.Workspace()
		if ws.Dashboard("d-old") != nil {
			t.Error("legacy dashboard survived migration")
		}
		if ws.Dashboards[0].Name != model.SeedDashboardName {
			t.Errorf("dashboard = %q, want fresh seed", ws.Dashboards[0].Name)
		}
	})

	t.Run("operations fail before Open", func(t *testing.T) {
		repos := inmem.NewStore().Repositories()
		s := NewStore(&Repos{Workspace: repos.Workspace, Layout: repos.Layout},
			widgetcfg.Builtin().ToRegistry(), testKey)
		if _, err := s.AddWidget(ctx, &AddWidgetInput{WidgetID: "clock"}); err != ErrNotReady {
			t.Errorf("err = %v, want ErrNotReady", err)
		}
	})
}
