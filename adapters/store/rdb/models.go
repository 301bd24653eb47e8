package rdb

import "time"

// WorkspaceRecord is the RDB persistence model for the per-user workspace
// document. The dashboards collection is stored as JSON in the wsdoc wire
// schema so the row and a *.workspace.json export agree.
// Table name: workspaces
type WorkspaceRecord struct {
	Tenant            string    `gorm:"primaryKey;type:text;not null"`
	UserID            string    `gorm:"primaryKey;column:user_id;type:text;not null"`
	Version           int       `gorm:"not null"`
	ActiveDashboardID string    `gorm:"type:text;not null"`
	Dashboards        string    `gorm:"type:text"` // JSON encoded wsdoc dashboards
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (WorkspaceRecord) TableName() string { return "workspaces" }

// LayoutRecord is the RDB persistence model for a named layout snapshot.
// Table name: layouts
type LayoutRecord struct {
	Name      string    `gorm:"primaryKey;type:text;not null"`
	Version   int       `gorm:"not null"`
	Count     int       `gorm:"not null"`
	Items     string    `gorm:"type:text"` // JSON encoded layoutdoc items
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (LayoutRecord) TableName() string { return "layouts" }
