package rdb

import (
	"context"
	"errors"
	"testing"

	"github.com/deckops/deckops/domain/model"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenFromURL("sqlite::memory:")
	if err != nil {
		t.Fatalf("OpenFromURL: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

func layoutFixture(name string) *model.LayoutSnapshot {
	return &model.LayoutSnapshot{
		Version: model.LayoutVersion,
		Name:    name,
		Items: []model.PlacedWidget{
			{InstanceID: "w-" + name, WidgetID: "globe", W: 4, H: 6, Order: 0},
		},
	}
}

func TestLayoutRepositoryRename(t *testing.T) {
	ctx := context.Background()

	t.Run("renames", func(t *testing.T) {
		r := NewLayoutRepository(newTestDB(t))
		if err := r.Save(ctx, layoutFixture("a"), false); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := r.Rename(ctx, "a", "b"); err != nil {
			t.Fatalf("Rename: %v", err)
		}
		if _, err := r.Load(ctx, "a"); !errors.Is(err, model.ErrLayoutNotFound) {
			t.Error("old name still resolves")
		}
		if _, err := r.Load(ctx, "b"); err != nil {
			t.Errorf("Load renamed: %v", err)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		r := NewLayoutRepository(newTestDB(t))
		if err := r.Rename(ctx, "nope", "b"); !errors.Is(err, model.ErrLayoutNotFound) {
			t.Errorf("err = %v, want ErrLayoutNotFound", err)
		}
	})

	t.Run("same name but absent still fails", func(t *testing.T) {
		r := NewLayoutRepository(newTestDB(t))
		if err := r.Rename(ctx, "ghost", "ghost"); !errors.Is(err, model.ErrLayoutNotFound) {
			t.Errorf("err = %v, want ErrLayoutNotFound", err)
		}
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		r := NewLayoutRepository(newTestDB(t))
		if err := r.Save(ctx, layoutFixture("a"), false); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := r.Rename(ctx, "a", "a"); err != nil {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("target collision", func(t *testing.T) {
		r := NewLayoutRepository(newTestDB(t))
		_ = r.Save(ctx, layoutFixture("a"), false)
		_ = r.Save(ctx, layoutFixture("b"), false)
		if err := r.Rename(ctx, "a", "b"); !errors.Is(err, model.ErrDuplicateName) {
			t.Errorf("err = %v, want ErrDuplicateName", err)
		}
	})

	t.Run("empty target rejected", func(t *testing.T) {
		r := NewLayoutRepository(newTestDB(t))
		if err := r.Rename(ctx, "a", ""); !errors.Is(err, model.ErrLayoutInvalid) {
			t.Errorf("err = %v, want ErrLayoutInvalid", err)
		}
	})
}

func TestLayoutRepositorySave(t *testing.T) {
	ctx := context.Background()

	t.Run("collision without overwrite", func(t *testing.T) {
		r := NewLayoutRepository(newTestDB(t))
		if err := r.Save(ctx, layoutFixture("a"), false); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := r.Save(ctx, layoutFixture("a"), false); !errors.Is(err, model.ErrDuplicateName) {
			t.Errorf("err = %v, want ErrDuplicateName", err)
		}
		if err := r.Save(ctx, layoutFixture("a"), true); err != nil {
			t.Errorf("overwrite: %v", err)
		}
	})

	t.Run("round trips items", func(t *testing.T) {
		r := NewLayoutRepository(newTestDB(t))
		if err := r.Save(ctx, layoutFixture("a"), false); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := r.Load(ctx, "a")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].WidgetID != "globe" {
			t.Errorf("items = %+v", got.Items)
		}
	})
}
