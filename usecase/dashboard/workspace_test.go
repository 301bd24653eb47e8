package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/models/wsdoc"
)

func TestExportWorkspace(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if _, err := s.AddWidget(ctx, &AddWidgetInput{WidgetID: "notes"}); err != nil {
		t.Fatalf("AddWidget: %v", err)
	}

	out, err := s.ExportWorkspace(ctx, &ExportWorkspaceInput{})
	if err != nil {
		t.Fatalf("ExportWorkspace: %v", err)
	}
	if !strings.HasSuffix(out.Filename, wsdoc.Extension) {
		t.Errorf("filename = %q", out.Filename)
	}
	ws, err := wsdoc.Decode(out.Data)
	if err != nil {
		t.Fatalf("Decode export: %v", err)
	}
	if len(ws.Dashboards) != 1 {
		t.Fatalf("dashboards = %d, want 1", len(ws.Dashboards))
	}
	if got := len(ws.Dashboards[0].Widgets); got != 3 {
		t.Errorf("widgets = %d, want the unsaved edit included", got)
	}
}

func TestImportWorkspace(t *testing.T) {
	ctx := context.Background()

	payload := func(t *testing.T) []byte {
		t.Helper()
		data, err := wsdoc.Encode(&model.Workspace{
			Version:           model.WorkspaceVersion,
			ActiveDashboardID: "d-in",
			Dashboards: []model.Dashboard{{
				ID: "d-in", Name: "Imported",
				Widgets: []model.WidgetInstance{
					{InstanceID: "w-in", WidgetID: "markets", W: 6, H: 4, Order: 0},
				},
			}},
		})
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		return data
	}

	t.Run("without overwrite only validates", func(t *testing.T) {
		s := newTestStore(t)
		out, err := s.ImportWorkspace(ctx, &ImportWorkspaceInput{Data: payload(t)})
		if err != nil {
			t.Fatalf("ImportWorkspace: %v", err)
		}
		if out.Applied {
			t.Error("Applied = true without overwrite")
		}
		if out.Dashboards != 1 {
			t.Errorf("dashboards = %d, want 1", out.Dashboards)
		}
		if s.Workspace().Dashboard("d-in") != nil {
			t.Error("validation-only import changed the workspace")
		}
	})

	t.Run("with overwrite replaces and reprojects", func(t *testing.T) {
		s := newTestStore(t)
		out, err := s.ImportWorkspace(ctx, &ImportWorkspaceInput{Data: payload(t), Overwrite: true})
		if err != nil {
			t.Fatalf("ImportWorkspace: %v", err)
		}
		if !out.Applied {
			t.Fatal("Applied = false")
		}
		arr := s.Arrangement()
		if len(arr) != 1 || arr[0].WidgetID != "markets" {
			t.Errorf("arrangement = %+v, want the imported widget", arr)
		}
		stored, err := s.Repos.Workspace.Load(ctx, testKey)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if stored.Dashboard("d-in") == nil {
			t.Error("imported workspace not persisted")
		}
	})

	t.Run("unsupported version mutates nothing", func(t *testing.T) {
		s := newTestStore(t)
		before := s.Workspace()
		_, err := s.ImportWorkspace(ctx, &ImportWorkspaceInput{
			Data:      []byte(`{"version": 9, "activeDashboardId": "", "dashboards": []}`),
			Overwrite: true,
		})
		if !errors.Is(err, model.ErrUnsupportedVersion) {
			t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
		}
		after := s.Workspace()
		if after.ActiveDashboardID != before.ActiveDashboardID || len(after.Dashboards) != len(before.Dashboards) {
			t.Error("failed import changed the workspace")
		}
	})

	t.Run("malformed payload fails", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.ImportWorkspace(ctx, &ImportWorkspaceInput{Data: []byte("not json"), Overwrite: true})
		if !errors.Is(err, model.ErrMalformedDocument) {
			t.Errorf("err = %v, want ErrMalformedDocument", err)
		}
	})

	t.Run("empty payload is invalid", func(t *testing.T) {
		s := newTestStore(t)
		if _, err := s.ImportWorkspace(ctx, &ImportWorkspaceInput{}); !errors.Is(err, model.ErrWorkspaceInvalid) {
			t.Errorf("err = %v, want ErrWorkspaceInvalid", err)
		}
	})
}
