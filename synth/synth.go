// Package synth generates aircraft states around a point of interest whose
// notification outcome is known beforehand. Each state's squawk tells which
// outcome is expected: NotifySquawk for states that must raise a
// notification, QuietSquawk for the others.
package synth

import (
	"errors"
	"math"

	"github.com/a-bouts/hems-lookout/latlon"
)

const (
	NotifySquawk = "0020"
	QuietSquawk  = "7000"
)

// Ludwigshafen is the BG Klinik heliport, the default centre.
var Ludwigshafen = latlon.GeoPoint{Lat: 49.4865293, Lon: 8.3892454}

// ErrNoConvergence is returned when no source point is found for a vector.
var ErrNoConvergence = errors.New("bearing search did not converge")

// Generator places aircraft around Centre. TrackDeviation (degrees) and
// MaxDistance (km) are the thresholds the expected outcome is computed with.
type Generator struct {
	Centre         latlon.GeoPoint
	TrackDeviation float64
	MaxDistance    float64
}

func NewGenerator(centre latlon.GeoPoint) *Generator {
	return &Generator{
		Centre:         centre,
		TrackDeviation: 5,
		MaxDistance:    70,
	}
}

func (g *Generator) squawk(notifiable bool) string {
	if notifiable {
		return NotifySquawk
	}
	return QuietSquawk
}

// deviation returns a-b wrapped into [-180, 180).
func deviation(a, b float64) float64 {
	return floorMod(a-b+180.0, 360.0) - 180.0
}

func floorMod(a, n float64) float64 {
	return a - n*math.Floor(a/n)
}
