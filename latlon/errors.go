package latlon

import (
	"errors"
	"fmt"
)

// ErrDegenerateGeometry is matched by every *DegenerateGeometryError.
var ErrDegenerateGeometry = errors.New("degenerate great circle geometry")

// DegenerateGeometryError is returned by Travel when a non cardinal path
// runs through a pole, where the spherical triangle collapses.
type DegenerateGeometryError struct {
	Origin   GeoPoint
	Distance float64
	Bearing  float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%s: travelling %v km from %s on bearing %v° passes through a pole",
		ErrDegenerateGeometry, e.Distance, e.Origin, e.Bearing)
}

func (e *DegenerateGeometryError) Is(target error) bool {
	return target == ErrDegenerateGeometry
}
