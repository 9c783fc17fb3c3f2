package models

import "errors"

// Sentinel errors shared by the repository and service layers.
// Handlers map them to HTTP statuses; the envelope message is chosen by the
// handler that knows which operation was attempted.

// ErrNotFound is returned when the requested row does not exist. Maps to 404.
var ErrNotFound = errors.New("not found")

// ErrOwnership is returned when the acting user does not own the trip being
// mutated. Maps to 403.
var ErrOwnership = errors.New("not the owner")

// ErrConflict is returned when a lifecycle transition is repeated on a trip
// that already carries the target status. Maps to 400.
var ErrConflict = errors.New("conflicting state")

// ErrInvalidCredentials is returned by login when the email/password pair does
// not match. Maps to 401.
var ErrInvalidCredentials = errors.New("invalid credentials")
