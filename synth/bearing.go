package synth

import (
	"fmt"
	"math"

	"github.com/a-bouts/hems-lookout/adsb"
	"github.com/a-bouts/hems-lookout/latlon"
)

const (
	bearingTolerance = 1e-6
	maxIterations    = 1000
)

// Vector is an aircraft track together with the bearing from the aircraft
// to the centre.
type Vector struct {
	Track   float64
	Bearing float64
}

// DefaultVectors sit on both sides of the default TrackDeviation around
// each cardinal direction.
var DefaultVectors = []Vector{
	{0, 354}, {0, 355}, {0, 0}, {0, 5}, {0, 6},
	{1, 355}, {1, 356}, {1, 1}, {1, 6}, {1, 7},
	{89, 83}, {89, 84}, {89, 89}, {89, 94}, {89, 95},
	{90, 84}, {90, 85}, {90, 90}, {90, 95}, {90, 96},
	{91, 85}, {91, 86}, {91, 91}, {91, 96}, {91, 97},
	{179, 173}, {179, 174}, {179, 179}, {179, 184}, {179, 185},
	{180, 174}, {180, 175}, {180, 180}, {180, 185}, {180, 186},
	{181, 175}, {181, 176}, {181, 181}, {181, 186}, {181, 187},
	{269, 263}, {269, 264}, {269, 269}, {269, 274}, {269, 275},
	{270, 264}, {270, 265}, {270, 270}, {270, 275}, {270, 276},
	{271, 265}, {271, 266}, {271, 271}, {271, 276}, {271, 277},
	{359, 353}, {359, 354}, {359, 359}, {359, 4}, {359, 5},
}

// BearingStates puts an aircraft for every vector at distance km from the
// centre, so that its bearing to the centre is the vector's bearing. Only
// the deviation of the track from that bearing decides the outcome.
func (g *Generator) BearingStates(distance float64, vectors []Vector) ([]adsb.AircraftState, error) {
	states := make([]adsb.AircraftState, 0, len(vectors))

	for _, v := range vectors {
		src, err := g.source(distance, v)
		if err != nil {
			return nil, fmt.Errorf("track %v bearing %v: %w", v.Track, v.Bearing, err)
		}

		states = append(states, adsb.AircraftState{
			Icao:   fmt.Sprintf("bearing=%v", v.Bearing),
			Squawk: g.squawk(math.Abs(deviation(v.Bearing, v.Track)) <= g.TrackDeviation),
			Pos:    src,
			Track:  v.Track,
		})
	}

	return states, nil
}

// source finds the point at distance km from the centre whose bearing back
// to the centre is v.Bearing. The bearing changes along a great circle, so
// this is a fixed point search starting from the opposite direction. The
// result is on the track side of v.Bearing: rounding must not move a
// vector across the deviation threshold.
func (g *Generator) source(distance float64, v Vector) (latlon.GeoPoint, error) {
	dev := deviation(v.Bearing, v.Track)

	reverse := v.Bearing
	step := 180.0

	for i := 0; i < maxIterations; i++ {
		reverse = floorMod(reverse-step, 360.0)

		src, err := latlon.Travel(g.Centre, distance, reverse)
		if err != nil {
			return src, err
		}

		diff := deviation(latlon.Bearing(src, g.Centre), v.Bearing)
		wrongSide := dev > 0 && diff > 0 || dev < 0 && diff < 0

		if math.Abs(diff) <= bearingTolerance && !wrongSide {
			return src, nil
		}

		step = diff
		if wrongSide {
			step += math.Copysign(bearingTolerance/2, diff)
		}
	}

	return latlon.GeoPoint{}, ErrNoConvergence
}
