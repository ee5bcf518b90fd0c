// Package alert decides which aircraft are heading for a user's location
// and builds the notifications to send for them.
package alert

import (
	"math"
	"time"

	"github.com/a-bouts/hems-lookout/adsb"
	"github.com/a-bouts/hems-lookout/latlon"
)

const (
	DefaultTrackDeviation = 5.0  // degrees
	DefaultMaxDistance    = 70.0 // km
)

// Filter holds the thresholds an aircraft must meet to be reported: its
// track must point at the location within TrackDeviation degrees and the
// location must be at most MaxDistance km away.
type Filter struct {
	Nav            latlon.Navigator
	TrackDeviation float64
	MaxDistance    float64
	Now            func() time.Time
}

func NewFilter() *Filter {
	return &Filter{
		Nav:            latlon.Spherical{},
		TrackDeviation: DefaultTrackDeviation,
		MaxDistance:    DefaultMaxDistance,
		Now:            time.Now,
	}
}

func (f *Filter) IsNotifiable(state adsb.AircraftState, poi latlon.GeoPoint) bool {
	bearing := f.Nav.BearingTo(state.Pos, poi)

	// Track and bearing on either side of north.
	deviation := floorMod(bearing-state.Track+180.0, 360.0) - 180.0

	if math.Abs(deviation) > f.TrackDeviation {
		return false
	}

	return f.Nav.DistanceTo(state.Pos, poi) <= f.MaxDistance
}

func floorMod(a, n float64) float64 {
	return a - n*math.Floor(a/n)
}
