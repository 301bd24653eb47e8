package model

import "errors"

var (
	// ErrUnsupportedVersion marks a file whose schema version is not
	// recognized. The operation surfaces it without touching state.
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	// ErrDuplicateName marks a save or rename collision without overwrite.
	ErrDuplicateName = errors.New("name already exists")
	// ErrMalformedDocument marks a payload that failed to parse.
	ErrMalformedDocument = errors.New("malformed document")

	ErrLayoutNotFound    = errors.New("layout not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrWidgetUnknown     = errors.New("widget type unknown")

	ErrLayoutInvalid    = errors.New("layout invalid")
	ErrWorkspaceInvalid = errors.New("workspace invalid")
)
