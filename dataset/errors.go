package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader is returned when the first line is not "K M" with K, M >= 1.
	ErrMalformedHeader = errors.New("dataset: malformed header")

	// ErrCoordinateCount is returned when a point line does not have M coordinates.
	ErrCoordinateCount = errors.New("dataset: wrong number of coordinates")

	// ErrInvalidNumber is returned for a token that is not a real number.
	ErrInvalidNumber = errors.New("dataset: invalid number")

	// ErrNonFinite is returned for NaN or infinite coordinates.
	ErrNonFinite = errors.New("dataset: non-finite coordinate")

	// ErrTooFewPoints is returned when the input has fewer than K points.
	ErrTooFewPoints = errors.New("dataset: fewer points than clusters")
)

// ParseError reports a problem at a specific input line.
type ParseError struct {
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
