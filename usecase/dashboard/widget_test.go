package dashboard

import (
	"context"
	"testing"

	"github.com/deckops/deckops/domain/model"
)

func TestAddWidget(t *testing.T) {
	ctx := context.Background()

	t.Run("appends below the current extent", func(t *testing.T) {
		s := newTestStore(t)
		// Starter: globe (0,0 4x6) and news (0,6 4x6).
		out, err := s.AddWidget(ctx, &AddWidgetInput{WidgetID: "stats"})
		if err != nil {
			t.Fatalf("AddWidget: %v", err)
		}
		if !out.Added || out.Widget == nil {
			t.Fatalf("out = %+v, want placed instance", out)
		}
		w := out.Widget
		if w.InstanceID == "" {
			t.Error("instance ID not generated")
		}
		if w.X != 0 || w.Y != 12 {
			t.Errorf("position = (%d,%d), want (0,12)", w.X, w.Y)
		}
		if w.W != 4 || w.H != 4 {
			t.Errorf("size = %dx%d, want registry default 4x4", w.W, w.H)
		}
		if w.Order != 2 {
			t.Errorf("order = %d, want 2", w.Order)
		}
		if len(s.Arrangement()) != 3 {
			t.Errorf("arrangement = %d widgets, want 3", len(s.Arrangement()))
		}
	})

	t.Run("unknown type is a no-op", func(t *testing.T) {
		s := newTestStore(t)
		out, err := s.AddWidget(ctx, &AddWidgetInput{WidgetID: "bogus"})
		if err != nil {
			t.Fatalf("AddWidget: %v", err)
		}
		if out.Added {
			t.Error("Added = true for unknown type")
		}
		if len(s.Arrangement()) != 2 {
			t.Error("arrangement changed")
		}
	})

	t.Run("persists the new arrangement", func(t *testing.T) {
		s := newTestStore(t)
		if _, err := s.AddWidget(ctx, &AddWidgetInput{WidgetID: "clock"}); err != nil {
			t.Fatalf("AddWidget: %v", err)
		}
		stored, err := s.Repos.Workspace.Load(ctx, testKey)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if got := len(stored.ActiveDashboard().Widgets); got != 3 {
			t.Errorf("persisted widgets = %d, want 3", got)
		}
	})
}

func TestCloseAndReopenWidget(t *testing.T) {
	ctx := context.Background()

	t.Run("close marks and reopen clears", func(t *testing.T) {
		s := newTestStore(t)
		id := s.Arrangement()[0].InstanceID

		out, err := s.CloseWidget(ctx, &CloseWidgetInput{InstanceID: id})
		if err != nil {
			t.Fatalf("CloseWidget: %v", err)
		}
		if !out.Closed {
			t.Fatal("Closed = false")
		}
		if !s.Arrangement()[0].Closed {
			t.Error("instance not marked closed")
		}

		rout, err := s.ReopenWidget(ctx, &ReopenWidgetInput{InstanceID: id})
		if err != nil {
			t.Fatalf("ReopenWidget: %v", err)
		}
		if !rout.Reopened {
			t.Fatal("Reopened = false")
		}
		if s.Arrangement()[0].Closed {
			t.Error("instance still closed after reopen")
		}
	})

	t.Run("absent instance is a no-op", func(t *testing.T) {
		s := newTestStore(t)
		out, err := s.CloseWidget(ctx, &CloseWidgetInput{InstanceID: "w-missing"})
		if err != nil {
			t.Fatalf("CloseWidget: %v", err)
		}
		if out.Closed {
			t.Error("Closed = true for absent instance")
		}
		rout, err := s.ReopenWidget(ctx, &ReopenWidgetInput{InstanceID: "w-missing"})
		if err != nil {
			t.Fatalf("ReopenWidget: %v", err)
		}
		if rout.Reopened {
			t.Error("Reopened = true for absent instance")
		}
	})
}

func TestListWidgets(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := s.Arrangement()[1].InstanceID
	if _, err := s.CloseWidget(ctx, &CloseWidgetInput{InstanceID: id}); err != nil {
		t.Fatalf("CloseWidget: %v", err)
	}

	out, err := s.ListWidgets(ctx, &ListWidgetsInput{})
	if err != nil {
		t.Fatalf("ListWidgets: %v", err)
	}
	if len(out.Items) != 1 {
		t.Errorf("visible = %d, want 1", len(out.Items))
	}

	all, err := s.ListWidgets(ctx, &ListWidgetsInput{IncludeClosed: true})
	if err != nil {
		t.Fatalf("ListWidgets: %v", err)
	}
	if len(all.Items) != 2 {
		t.Errorf("all = %d, want 2", len(all.Items))
	}
	for i := 1; i < len(all.Items); i++ {
		if all.Items[i-1].Order > all.Items[i].Order {
			t.Errorf("items not sorted by order: %v", all.Items)
		}
	}
}

func TestImportArrangement(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces after sanitization", func(t *testing.T) {
		s := newTestStore(t)
		out, err := s.ImportArrangement(ctx, &ImportArrangementInput{
			Items: []model.WidgetInstance{
				{InstanceID: "w-1", WidgetID: "clock", W: 2, H: 2, Order: 0},
				{InstanceID: "w-2", WidgetID: "bogus", W: 4, H: 4, Order: 1},
			},
		})
		if err != nil {
			t.Fatalf("ImportArrangement: %v", err)
		}
		if out.Seeded {
			t.Error("Seeded = true, want sanitized input kept")
		}
		if len(out.Items) != 1 || out.Items[0].WidgetID != "clock" {
			t.Errorf("items = %+v, want the clock only", out.Items)
		}
	})

	t.Run("empty result falls back to the starter", func(t *testing.T) {
		s := newTestStore(t)
		out, err := s.ImportArrangement(ctx, &ImportArrangementInput{
			Items: []model.WidgetInstance{
				{InstanceID: "w-1", WidgetID: "bogus", W: 4, H: 4, Order: 0},
			},
		})
		if err != nil {
			t.Fatalf("ImportArrangement: %v", err)
		}
		if !out.Seeded {
			t.Error("Seeded = false, want starter substitution")
		}
		if len(out.Items) != 2 {
			t.Errorf("items = %d, want starter 2", len(out.Items))
		}
	})
}
