// Package settings owns the per-profile settings document: its schema,
// defaults, persistence and the editing rules around it.
//
// The document lives as a single JSON file inside the profile's media
// directory so the host application syncs it between devices. Everything here
// runs on the host's main thread; there is no locking.
package settings

import "errors"

// Document-level errors.
var (
	// ErrCorrupt marks a settings file that exists but cannot be used:
	// invalid JSON or a top level that is not an object. Distinct from a
	// missing file, which simply yields factory defaults.
	ErrCorrupt = errors.New("settings document is corrupt")
)

// Validation errors surfaced by editing operations.
var (
	ErrIncompleteQuickKey = errors.New("a quick key needs a deck name, a note type and a regular key")
	ErrKeyConflict        = errors.New("extract, highlight and remove keys must differ")
	ErrNotInteger         = errors.New("expected an integer")
	ErrBadMethod          = errors.New("method must be percent or count")
	ErrUnknownField       = errors.New("unknown settings field")
	ErrUnknownTarget      = errors.New("no highlight action with that key")
	ErrNotSettable        = errors.New("field cannot be set directly")
)
