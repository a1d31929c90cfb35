package scorer

import "errors"

var (
	// ErrNoExamples is returned when Fit is called with an empty set.
	ErrNoExamples = errors.New("no training examples")

	// ErrBadState is returned when scorer state bytes cannot be decoded.
	ErrBadState = errors.New("invalid scorer state")
)
