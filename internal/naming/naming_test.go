package naming

import (
	"strings"
	"testing"
)

func TestNewCompactID(t *testing.T) {
	id := NewCompactID()
	if len(id) != 12 {
		t.Fatalf("expected 12 chars, got %d (%q)", len(id), id)
	}
	for _, ch := range id {
		if !(ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z') {
			t.Errorf("unexpected character %q in %q", ch, id)
		}
	}
}

func TestNewCompactID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewCompactID()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestPrefixes(t *testing.T) {
	if !strings.HasPrefix(InstanceID(), "w-") {
		t.Error("instance ID missing w- prefix")
	}
	if !strings.HasPrefix(DashboardID(), "d-") {
		t.Error("dashboard ID missing d- prefix")
	}
}
