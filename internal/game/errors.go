package game

import "errors"

var (
	// ErrInvalidTransition is returned when an action does not apply to the
	// current state. Nothing changes.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInternalInconsistency means the displayed item is not in the catalog.
	// The level is aborted as failed.
	ErrInternalInconsistency = errors.New("internal inconsistency")

	// ErrStaleTick is returned for a countdown tick scheduled for a level that
	// has since ended or been replaced.
	ErrStaleTick = errors.New("stale countdown tick")
)
