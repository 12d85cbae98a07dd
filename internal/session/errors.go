package session

import "errors"

// Sentinel errors for session mutations. Callers match with errors.Is;
// removals of absent ids are no-ops, not errors.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoActiveVideo = errors.New("no active video loaded")
	ErrInvalidRange  = errors.New("invalid time range")
	ErrClipNotFound  = errors.New("clip not found")
)
