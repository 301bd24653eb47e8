// Package layoutdoc defines the portable layout file schema (*.layout.json)
// and its conversion to domain models. Decoding is strict about structure
// and version but lenient about per-item fields: missing dimensions and
// order values survive as unset markers for sanitization to fill.
package layoutdoc

import "time"

// Version is the layout file schema version this build reads and writes.
const Version = 1

// Extension is the file extension convention for exported layouts.
const Extension = ".layout.json"

// Item is one placed widget in a layout file.
type Item struct {
	ID         string         `json:"id"` // widget type ID
	InstanceID string         `json:"instanceId"`
	Title      string         `json:"title,omitempty"`
	Props      map[string]any `json:"props,omitempty"`
	Order      *int           `json:"order,omitempty"`
	X          int            `json:"x"`
	Y          int            `json:"y"`
	W          *int           `json:"w,omitempty"`
	H          *int           `json:"h,omitempty"`
}

// Document is the root structure of a *.layout.json file.
type Document struct {
	Version   int       `json:"version"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Items     []Item    `json:"items"`
}
