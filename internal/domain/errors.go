package domain

import "errors"

// ErrInvalidInput marks rejected input records and requests. It is the only
// error class surfaced to callers as a hard failure; every other condition
// (infeasible constraints, directory outages, degenerate inputs) degrades
// with a recorded rationale instead.
var ErrInvalidInput = errors.New("invalid input")

// ErrDirectoryUnavailable marks a failed external airport-directory lookup.
// Callers fall back to the static table and continue.
var ErrDirectoryUnavailable = errors.New("airport directory unavailable")
