package layoutdoc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deckops/deckops/domain/model"
)

// Encode serializes a snapshot to the portable file payload.
func Encode(snap *model.LayoutSnapshot) ([]byte, error) {
	data, err := json.MarshalIndent(FromModel(snap), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout %q: %w", snap.Name, err)
	}
	return data, nil
}

// Decode parses a portable layout payload. A parse failure maps to
// model.ErrMalformedDocument and an unrecognized version to
// model.ErrUnsupportedVersion; neither mutates anything.
func Decode(data []byte) (*model.LayoutSnapshot, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedDocument, err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: layout version %d", model.ErrUnsupportedVersion, doc.Version)
	}
	return doc.ToModel(), nil
}

// EncodeItems serializes only the items collection. The relational store
// keeps it in a JSON column so the stored row and the export file share one
// schema.
func EncodeItems(items []model.PlacedWidget) (string, error) {
	doc := FromModel(&model.LayoutSnapshot{Items: items})
	data, err := json.Marshal(doc.Items)
	if err != nil {
		return "", fmt.Errorf("encode layout items: %w", err)
	}
	return string(data), nil
}

// DecodeItems parses an items JSON column.
func DecodeItems(data string) ([]model.PlacedWidget, error) {
	var items []Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedDocument, err)
	}
	doc := Document{Version: Version, Items: items}
	return doc.ToModel().Items, nil
}

// Filename suggests an export file name for a snapshot name.
func Filename(name string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	if safe == "" {
		safe = "layout"
	}
	return safe + Extension
}
