package wsdoc

import (
	"encoding/json"
	"fmt"

	"github.com/deckops/deckops/domain/model"
)

// Encode serializes a workspace to the portable file payload.
func Encode(ws *model.Workspace) ([]byte, error) {
	data, err := json.MarshalIndent(FromModel(ws), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode workspace: %w", err)
	}
	return data, nil
}

// Decode parses a portable workspace payload. Parse failures map to
// model.ErrMalformedDocument and unrecognized versions to
// model.ErrUnsupportedVersion. The returned workspace is unsanitized.
func Decode(data []byte) (*model.Workspace, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedDocument, err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: workspace version %d", model.ErrUnsupportedVersion, doc.Version)
	}
	return doc.ToModel(), nil
}

// EncodeDashboards serializes only the dashboards collection. The
// relational store keeps it in a JSON column so the stored row and the
// export file share one schema.
func EncodeDashboards(dashboards []model.Dashboard) (string, error) {
	slots := make([]Dashboard, 0, len(dashboards))
	for _, d := range dashboards {
		slots = append(slots, DashboardFromModel(d))
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return "", fmt.Errorf("encode dashboards: %w", err)
	}
	return string(data), nil
}

// DecodeDashboards parses a dashboards JSON column.
func DecodeDashboards(data string) ([]model.Dashboard, error) {
	var slots []Dashboard
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedDocument, err)
	}
	out := make([]model.Dashboard, 0, len(slots))
	for _, d := range slots {
		out = append(out, d.ToModel())
	}
	return out, nil
}
