package synth

import (
	"fmt"

	"github.com/a-bouts/hems-lookout/adsb"
	"github.com/a-bouts/hems-lookout/latlon"
)

// DefaultDistances straddle the default MaxDistance.
var DefaultDistances = []float64{69.999, 70.001}

var DefaultBearings = []float64{
	0, 30, 45, 60, 90, 120, 135, 150, 180, 210, 225, 240, 270, 300, 315, 330, 360,
}

// DistanceStates puts an aircraft at every distance and bearing from the
// centre, heading straight for it. Only the distance decides the outcome.
func (g *Generator) DistanceStates(distances, bearings []float64) ([]adsb.AircraftState, error) {
	states := make([]adsb.AircraftState, 0, len(distances)*len(bearings))

	for _, d := range distances {
		for _, b := range bearings {
			src, err := latlon.Travel(g.Centre, d, b+180.0)
			if err != nil {
				return nil, fmt.Errorf("distance %v bearing %v: %w", d, b, err)
			}

			states = append(states, adsb.AircraftState{
				Icao:   fmt.Sprintf("distance=%v,bearing=%v", d, b),
				Squawk: g.squawk(d <= g.MaxDistance),
				Pos:    src,
				Track:  b,
			})
		}
	}

	return states, nil
}
