package widgetcfg

// Builtin returns the catalog compiled into the binary, used when no
// catalog file is configured.
func Builtin() *Root {
	return &Root{
		Version: CatalogVersion,
		Widgets: []Widget{
			{ID: "globe", Title: "Globe", Group: "visualization", W: 4, H: 6},
			{ID: "news", Title: "News Feed", Group: "feeds", W: 4, H: 6},
			{ID: "stats", Title: "Statistics", Group: "analytics", W: 4, H: 4},
			{ID: "markets", Title: "Markets", Group: "analytics", W: 6, H: 4},
			{ID: "clock", Title: "World Clock", Group: "utilities", W: 2, H: 2},
			{ID: "notes", Title: "Notes", Group: "utilities", W: 4, H: 4},
		},
		Starter: []string{"globe", "news"},
	}
}
