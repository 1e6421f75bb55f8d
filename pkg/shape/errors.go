package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrCollinearPoints is matched by every *CollinearPointsError.
	ErrCollinearPoints = errors.New("points are collinear")
	// ErrInvalidProperty reports a rejected entity property.
	ErrInvalidProperty = errors.New("invalid entity property")
)

// CollinearPointsError is returned when three points admit no circumscribing circle.
type CollinearPointsError struct {
	Points [3]Point
	Det    float64
}

func (e *CollinearPointsError) Error() string {
	p := e.Points
	return fmt.Sprintf("the three points (%g, %g), (%g, %g), (%g, %g) are collinear and cannot form a circle",
		p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
}

// Is lets errors.Is(err, ErrCollinearPoints) match.
func (e *CollinearPointsError) Is(target error) bool {
	return target == ErrCollinearPoints
}
