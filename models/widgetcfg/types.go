// Package widgetcfg defines the widget registry catalog schema. The catalog
// is the engine's read-only view of the available widget types: identity,
// display title, grouping, and default grid dimensions. It can be loaded
// from a YAML file or taken from the built-in default catalog.
package widgetcfg

// Root is the root structure of a widgets.yml catalog file.
// Example:
//
//	version: 1
//	widgets:
//	  - id: globe
//	    title: Globe
//	    group: visualization
//	    w: 4
//	    h: 6
//	starter: [globe, news]
type Root struct {
	Version int      `yaml:"version"`
	Widgets []Widget `yaml:"widgets"`
	Starter []string `yaml:"starter,omitempty"`
}

// Widget is one catalog entry.
type Widget struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Group string `yaml:"group,omitempty"`
	W     int    `yaml:"w"`
	H     int    `yaml:"h"`
}

// CatalogVersion is the supported catalog schema version.
const CatalogVersion = 1

// Default widget dimensions used when a catalog entry omits them.
const (
	DefaultW = 4
	DefaultH = 4
)
