package rdb

import (
	"context"
	"errors"
	"time"

	"github.com/deckops/deckops/domain"
	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/models/wsdoc"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkspaceRepository is a GORM-backed implementation of
// domain.WorkspaceRepository.
type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func (r *WorkspaceRepository) Load(ctx context.Context, key model.WorkspaceKey) (*model.Workspace, error) {
	var rec WorkspaceRecord
	err := r.db.WithContext(ctx).
		First(&rec, "tenant = ? AND user_id = ?", key.Tenant, key.User).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrWorkspaceNotFound
		}
		return nil, err
	}
	dashboards, err := wsdoc.DecodeDashboards(rec.Dashboards)
	if err != nil {
		return nil, err
	}
	return &model.Workspace{
		Version:           rec.Version,
		ActiveDashboardID: rec.ActiveDashboardID,
		Dashboards:        dashboards,
	}, nil
}

func (r *WorkspaceRepository) Save(ctx context.Context, key model.WorkspaceKey, ws *model.Workspace) error {
	if ws == nil {
		return model.ErrWorkspaceInvalid
	}
	dashboards, err := wsdoc.EncodeDashboards(ws.Dashboards)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	rec := &WorkspaceRecord{
		Tenant:            key.Tenant,
		UserID:            key.User,
		Version:           ws.Version,
		ActiveDashboardID: ws.ActiveDashboardID,
		Dashboards:        dashboards,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	// Last-writer-wins upsert; CreatedAt survives the first insert.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"version", "active_dashboard_id", "dashboards", "updated_at",
		}),
	}).Create(rec).Error
}

// Ensure interface satisfaction.
var _ domain.WorkspaceRepository = (*WorkspaceRepository)(nil)
