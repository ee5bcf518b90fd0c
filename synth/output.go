package synth

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/a-bouts/hems-lookout/adsb"
)

// WriteJSON writes states as an ADS-B feed file.
func WriteJSON(w io.Writer, states []adsb.AircraftState) error {
	feed := adsb.Feed{States: make([][]interface{}, 0, len(states))}
	for _, s := range states {
		feed.States = append(feed.States, s.Record())
	}
	return feed.Encode(w)
}

// WriteCSV writes one name,latitude,longitude line per state, a layout map
// visualisers take as is.
func WriteCSV(w io.Writer, states []adsb.AircraftState) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"name", "latitude", "longitude"}); err != nil {
		return err
	}
	for _, s := range states {
		row := []string{
			s.Icao,
			strconv.FormatFloat(s.Pos.Lat, 'f', -1, 64),
			strconv.FormatFloat(s.Pos.Lon, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
