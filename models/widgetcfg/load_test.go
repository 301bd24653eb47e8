package widgetcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widgets.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		path := writeCatalog(t, `
version: 1
widgets:
  - id: globe
    title: Globe
    group: visualization
    w: 4
    h: 6
  - id: ticker
starter: [globe]
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(cfg.Widgets) != 2 {
			t.Fatalf("widgets = %d, want 2", len(cfg.Widgets))
		}
		if cfg.Starter[0] != "globe" {
			t.Errorf("starter = %v", cfg.Starter)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeCatalog(t, "version: 2\nwidgets:\n  - id: globe\n")
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "unsupported catalog version") {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("empty widget list", func(t *testing.T) {
		path := writeCatalog(t, "version: 1\nwidgets: []\n")
		if _, err := Load(path); err == nil {
			t.Error("expected error for empty catalog")
		}
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := writeCatalog(t, "version: 1\nwidgets:\n  - id: globe\n  - id: globe\n")
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "duplicate widget id") {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		path := writeCatalog(t, "version: 1\nwidgets:\n  - title: Nameless\n")
		if _, err := Load(path); err == nil {
			t.Error("expected error for empty id")
		}
	})
}

func TestToRegistry(t *testing.T) {
	cfg := &Root{
		Version: CatalogVersion,
		Widgets: []Widget{
			{ID: "globe", Title: "Globe", W: 4, H: 6},
			{ID: "bare"},
		},
		Starter: []string{"globe", "ghost"},
	}
	reg := cfg.ToRegistry()

	def, ok := reg.Lookup("bare")
	if !ok {
		t.Fatal("bare not registered")
	}
	if def.Title != "bare" {
		t.Errorf("title = %q, want the ID fallback", def.Title)
	}
	if def.DefaultW != DefaultW || def.DefaultH != DefaultH {
		t.Errorf("defaults = %dx%d, want %dx%d", def.DefaultW, def.DefaultH, DefaultW, DefaultH)
	}

	if _, ok := reg.Lookup("ghost"); ok {
		t.Error("ghost resolved")
	}
	starter := reg.Starter()
	if len(starter) != 1 || starter[0] != "globe" {
		t.Errorf("starter = %v, want IDs filtered to the catalog", starter)
	}
	if len(reg.Defs()) != 2 {
		t.Errorf("defs = %d, want 2", len(reg.Defs()))
	}
}

func TestBuiltin(t *testing.T) {
	cfg := Builtin()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("builtin catalog invalid: %v", err)
	}
	reg := cfg.ToRegistry()
	for _, id := range reg.Starter() {
		if _, ok := reg.Lookup(id); !ok {
			t.Errorf("starter %q not in catalog", id)
		}
	}
}
