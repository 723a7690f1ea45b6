package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when a referenced source no longer exists
	// in the scene graph.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrTargetNotFound is returned when a named target does not exist.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrNoCurveData is returned when a source has no curve data to evaluate.
	ErrNoCurveData = zerr.New("source has no curve data")

	// ErrUnsupportedModifier is returned when the evaluation service cannot
	// apply a modifier kind.
	ErrUnsupportedModifier = zerr.New("unsupported modifier kind")

	// ErrBuildFailed is returned when the evaluation service fails to produce
	// a mesh for a target.
	ErrBuildFailed = zerr.New("mesh build failed")

	// ErrResourceInUse is returned when removing a mesh resource that still
	// has external references.
	ErrResourceInUse = zerr.New("mesh resource still referenced")

	// ErrResourceNotFound is returned when a mesh resource is not in the store.
	ErrResourceNotFound = zerr.New("mesh resource not found")

	// ErrDocumentReadFailed is returned when a scene document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read scene document")

	// ErrDocumentParseFailed is returned when a scene document cannot be parsed.
	ErrDocumentParseFailed = zerr.New("failed to parse scene document")

	// ErrDocumentWriteFailed is returned when a scene document cannot be written.
	ErrDocumentWriteFailed = zerr.New("failed to write scene document")

	// ErrDuplicateObjectName is returned when a document declares two objects
	// with the same stable name.
	ErrDuplicateObjectName = zerr.New("duplicate object name")

	// ErrUnknownSplineKind is returned when a document declares a spline of an
	// unknown kind.
	ErrUnknownSplineKind = zerr.New("unknown spline kind")

	// ErrWatcherClosed is returned when events are requested from a stopped
	// document watcher.
	ErrWatcherClosed = zerr.New("document watcher closed")
)
