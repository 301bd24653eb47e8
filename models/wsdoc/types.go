// Package wsdoc defines the workspace document schema (*.workspace.json)
// shared by whole-workspace export files and the relational store's JSON
// columns, plus its conversion to domain models.
package wsdoc

import "time"

// Version is the workspace schema version this build reads and writes.
const Version = 1

// Extension is the file extension convention for exported workspaces.
const Extension = ".workspace.json"

// WidgetItem is one widget slot inside a persisted dashboard.
type WidgetItem struct {
	I        string         `json:"i"` // instance ID
	WidgetID string         `json:"widgetId"`
	W        *int           `json:"w,omitempty"`
	H        *int           `json:"h,omitempty"`
	X        int            `json:"x"`
	Y        int            `json:"y"`
	Props    map[string]any `json:"props,omitempty"`
	Closed   bool           `json:"closed,omitempty"`
	Order    *int           `json:"order,omitempty"`
}

// Dashboard is one dashboard slot inside the workspace document.
type Dashboard struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Layout    []WidgetItem `json:"layout"`
}

// Document is the root structure of a *.workspace.json file.
type Document struct {
	Version           int         `json:"version"`
	ActiveDashboardID string      `json:"activeDashboardId"`
	Dashboards        []Dashboard `json:"dashboards"`
}
