package wsdoc

import (
	"errors"
	"testing"

	"github.com/deckops/deckops/domain/model"
)

func TestDecode(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := []byte(`{
			"version": 1,
			"activeDashboardId": "d-1",
			"dashboards": [
				{
					"id": "d-1",
					"name": "Main",
					"layout": [
						{"i": "w-1", "widgetId": "globe", "x": 0, "y": 0, "w": 4, "h": 6, "order": 0},
						{"i": "w-2", "widgetId": "news", "x": 0, "y": 6, "closed": true}
					]
				}
			]
		}`)
		ws, err := Decode(payload)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if ws.ActiveDashboardID != "d-1" || len(ws.Dashboards) != 1 {
			t.Fatalf("ws = %+v", ws)
		}
		widgets := ws.Dashboards[0].Widgets
		if len(widgets) != 2 {
			t.Fatalf("widgets = %d, want 2", len(widgets))
		}
		if !widgets[1].Closed {
			t.Error("closed flag lost")
		}
		if widgets[1].Order != model.OrderUnset {
			t.Errorf("missing order = %d, want OrderUnset", widgets[1].Order)
		}
		if widgets[1].W != 0 {
			t.Errorf("missing width = %d, want 0", widgets[1].W)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := Decode([]byte(`{"version": 2, "dashboards": []}`))
		if !errors.Is(err, model.ErrUnsupportedVersion) {
			t.Errorf("err = %v, want ErrUnsupportedVersion", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		for _, payload := range []string{"", "not json", "[1,2]"} {
			if _, err := Decode([]byte(payload)); !errors.Is(err, model.ErrMalformedDocument) {
				t.Errorf("Decode(%q): err = %v, want ErrMalformedDocument", payload, err)
			}
		}
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ws := &model.Workspace{
		Version:           model.WorkspaceVersion,
		ActiveDashboardID: "d-1",
		Dashboards: []model.Dashboard{{
			ID: "d-1", Name: "Main",
			Widgets: []model.WidgetInstance{
				{InstanceID: "w-1", WidgetID: "globe", X: 0, Y: 0, W: 4, H: 6,
					Props: map[string]any{"zoom": "auto"}, Order: 0},
				{InstanceID: "w-2", WidgetID: "news", X: 0, Y: 6, W: 4, H: 6, Order: 1, Closed: true},
			},
		}},
	}
	data, err := Encode(ws)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ActiveDashboardID != ws.ActiveDashboardID || len(got.Dashboards) != 1 {
		t.Fatalf("got = %+v", got)
	}
	a, b := got.Dashboards[0].Widgets, ws.Dashboards[0].Widgets
	if len(a) != len(b) {
		t.Fatalf("widgets = %d, want %d", len(a), len(b))
	}
	for i := range a {
		if a[i].InstanceID != b[i].InstanceID || a[i].WidgetID != b[i].WidgetID ||
			a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].W != b[i].W || a[i].H != b[i].H ||
			a[i].Order != b[i].Order || a[i].Closed != b[i].Closed {
			t.Errorf("widget %d = %+v, want %+v", i, a[i], b[i])
		}
	}
	if a[0].Props["zoom"] != "auto" {
		t.Errorf("props = %v", a[0].Props)
	}
}

func TestDashboardsColumnRoundTrip(t *testing.T) {
	in := []model.Dashboard{
		{ID: "d-1", Name: "One", Widgets: []model.WidgetInstance{
			{InstanceID: "w-1", WidgetID: "clock", W: 2, H: 2, Order: 0},
		}},
		{ID: "d-2", Name: "Two"},
	}
	col, err := EncodeDashboards(in)
	if err != nil {
		t.Fatalf("EncodeDashboards: %v", err)
	}
	out, err := DecodeDashboards(col)
	if err != nil {
		t.Fatalf("DecodeDashboards: %v", err)
	}
	if len(out) != 2 || out[0].ID != "d-1" || out[1].ID != "d-2" {
		t.Fatalf("out = %+v", out)
	}
	if len(out[0].Widgets) != 1 || out[0].Widgets[0].WidgetID != "clock" {
		t.Errorf("widgets = %+v", out[0].Widgets)
	}
}
