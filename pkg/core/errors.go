package core

import "errors"

// Common errors.
var (
	// ErrSlotEmpty is returned by Slot.Load when nothing was stored yet.
	ErrSlotEmpty = errors.New("slot is empty")

	// ErrReadOnly is returned by slots opened in read-only mode.
	ErrReadOnly = errors.New("slot is in read-only mode")

	// ErrStorageUnavailable wraps slot failures. Once returned, the store
	// keeps working in memory for the rest of the session.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrWatchUnsupported is returned by Store.Watch when the slot cannot
	// report external changes.
	ErrWatchUnsupported = errors.New("slot does not support watching")

	// ErrAlreadyHydrated is returned by a second call to Store.Hydrate.
	ErrAlreadyHydrated = errors.New("store already hydrated")
)
