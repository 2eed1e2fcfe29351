package leitner

import "errors"

// Sentinel errors for the leitner package.
// Use errors.Is to check: errors.Is(err, leitner.ErrInvalidDifficulty)
var (
	ErrInvalidDifficulty = errors.New("leitner: invalid answer difficulty")
	ErrInvalidDay        = errors.New("leitner: day must be non-negative")
)
