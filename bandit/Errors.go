package bandit

import "errors"

var (
	// ErrInvalidConfig is returned when a Simulator is constructed with
	// a parameter outside of its domain
	ErrInvalidConfig = errors.New("invalid bandit configuration")

	// ErrNoStep is returned by accessors that describe the most recent
	// round when no round has been taken since construction or the
	// last call to Reset()
	ErrNoStep = errors.New("no step taken since reset")
)
