package widgetcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML catalog file from the given path.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks catalog-level invariants: supported version, non-empty
// unique widget IDs. Missing dimensions are tolerated and defaulted during
// conversion.
func (r *Root) Validate() error {
	if r.Version != CatalogVersion {
		return fmt.Errorf("unsupported catalog version %d", r.Version)
	}
	if len(r.Widgets) == 0 {
		return fmt.Errorf("catalog has no widgets")
	}
	seen := make(map[string]bool, len(r.Widgets))
	for i, w := range r.Widgets {
		if w.ID == "" {
			return fmt.Errorf("widget %d has empty id", i)
		}
		if seen[w.ID] {
			return fmt.Errorf("duplicate widget id %q", w.ID)
		}
		seen[w.ID] = true
	}
	return nil
}
