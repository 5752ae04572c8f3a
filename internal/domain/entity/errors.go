package entity

import "errors"

// Registry and session errors. Callers match them with errors.Is.
var (
	// ErrDuplicateID is returned when adding an account whose id is already registered.
	ErrDuplicateID = errors.New("account id already exists")

	// ErrProtectedAccount is returned when removing or reordering the default account.
	ErrProtectedAccount = errors.New("default account is protected")

	// ErrAccountNotFound is returned when mutating an unknown account id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountID is returned for ids that cannot name a session directory
	// or carry a routing id.
	ErrInvalidAccountID = errors.New("invalid account id")

	// ErrInvalidColor is returned for colors that are not #rrggbb.
	ErrInvalidColor = errors.New("invalid account color")

	// ErrMigrationPartialFailure marks a legacy migration where the data
	// directory moved but the cache directory did not.
	ErrMigrationPartialFailure = errors.New("legacy migration partially failed")

	// ErrStorage wraps directory and file failures surfaced by mutating operations.
	ErrStorage = errors.New("storage i/o error")
)
