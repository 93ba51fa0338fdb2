package domain

import "errors"

var (
	// ErrOracleUnavailable is returned when a viewer's balance could not be
	// determined. It is never collapsed into a zero balance.
	ErrOracleUnavailable = errors.New("balance oracle unavailable")

	// ErrInvalidConfiguration is returned when a drop's gating requirement
	// cannot be resolved, e.g. a USD gate with no recorded price
	ErrInvalidConfiguration = errors.New("invalid gating configuration")

	// ErrDropNotFound is returned when the target drop does not exist
	ErrDropNotFound = errors.New("drop not found")

	// ErrDropInactive is returned when the target drop is not currently gate-able
	ErrDropInactive = errors.New("drop is not active")

	// ErrStorageUnavailable is returned when the persistent store could not
	// complete a read or write
	ErrStorageUnavailable = errors.New("storage unavailable")
)
