package rdb

import (
	"context"
	"errors"
	"time"

	"github.com/deckops/deckops/domain"
	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/models/layoutdoc"
	"gorm.io/gorm"
)

// LayoutRepository is a GORM-backed implementation of
// domain.LayoutRepository.
type LayoutRepository struct {
	db *gorm.DB
}

func NewLayoutRepository(db *gorm.DB) *LayoutRepository {
	return &LayoutRepository{db: db}
}

func (r *LayoutRepository) List(ctx context.Context) ([]*model.LayoutInfo, error) {
	var recs []LayoutRecord
	err := r.db.WithContext(ctx).
		Select("name", "count", "created_at", "updated_at").
		Order("name ASC").Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]*model.LayoutInfo, 0, len(recs))
	for i := range recs {
		out = append(out, &model.LayoutInfo{
			Name:      recs[i].Name,
			CreatedAt: recs[i].CreatedAt,
			UpdatedAt: recs[i].UpdatedAt,
			Count:     recs[i].Count,
		})
	}
	return out, nil
}

func (r *LayoutRepository) Save(ctx context.Context, snap *model.LayoutSnapshot, overwrite bool) error {
	if snap == nil || snap.Name == "" {
		return model.ErrLayoutInvalid
	}
	items, err := layoutdoc.EncodeItems(snap.Items)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing LayoutRecord
		err := tx.First(&existing, "name = ?", snap.Name).Error
		switch {
		case err == nil:
			if !overwrite {
				return model.ErrDuplicateName
			}
			return tx.Model(&LayoutRecord{}).Where("name = ?", snap.Name).Updates(map[string]any{
				"version":    layoutdoc.Version,
				"count":      len(snap.Items),
				"items":      items,
				"updated_at": now,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			createdAt := snap.CreatedAt
			if createdAt.IsZero() {
				createdAt = now
			}
			return tx.Create(&LayoutRecord{
				Name:      snap.Name,
				Version:   layoutdoc.Version,
				Count:     len(snap.Items),
				Items:     items,
				CreatedAt: createdAt,
				UpdatedAt: now,
			}).Error
		default:
			return err
		}
	})
}

func (r *LayoutRepository) Load(ctx context.Context, name string) (*model.LayoutSnapshot, error) {
	var rec LayoutRecord
	err := r.db.WithContext(ctx).First(&rec, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrLayoutNotFound
		}
		return nil, err
	}
	items, err := layoutdoc.DecodeItems(rec.Items)
	if err != nil {
		return nil, err
	}
	return &model.LayoutSnapshot{
		Version:   rec.Version,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Items:     items,
	}, nil
}

func (r *LayoutRepository) Rename(ctx context.Context, oldName, newName string) error {
	if newName == "" {
		return model.ErrLayoutInvalid
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&LayoutRecord{}).Where("name = ?", oldName).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return model.ErrLayoutNotFound
		}
		if oldName == newName {
			return nil
		}
		var clash int64
		if err := tx.Model(&LayoutRecord{}).Where("name = ?", newName).Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return model.ErrDuplicateName
		}
		return tx.Model(&LayoutRecord{}).Where("name = ?", oldName).Updates(map[string]any{
			"name":       newName,
			"updated_at": time.Now().UTC(),
		}).Error
	})
}

func (r *LayoutRepository) Remove(ctx context.Context, name string) error {
	// Removing an absent snapshot is a no-op.
	return r.db.WithContext(ctx).Delete(&LayoutRecord{}, "name = ?", name).Error
}

// Ensure interface satisfaction.
var _ domain.LayoutRepository = (*LayoutRepository)(nil)
