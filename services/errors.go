package services

import "errors"

// Validation and storage failures surfaced to the transport layer. Each maps
// to a distinct machine-checkable error kind in the HTTP response.
var (
	// ErrTaskNotFound means the submitted task id is unknown
	ErrTaskNotFound = errors.New("task not found")
	// ErrMissingName means rating visibility was requested without a name
	ErrMissingName = errors.New("name required for rating visibility")
	// ErrProfaneName means the candidate display name matched a banned term
	ErrProfaneName = errors.New("name contains banned words")
	// ErrStoreUnavailable means the state could not be durably written
	ErrStoreUnavailable = errors.New("store unavailable")
)
