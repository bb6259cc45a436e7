package interfaces

import "errors"

var (
	// ErrAlreadyExists is returned by repositories when a conditional create finds the key taken.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotConfigured is wrapped by integration clients whose credentials are missing.
	ErrNotConfigured = errors.New("integration not configured")

	// ErrUnknownSideEffect is returned by runners for a kind they cannot execute. Retrying
	// never helps.
	ErrUnknownSideEffect = errors.New("unknown side effect kind")
)
