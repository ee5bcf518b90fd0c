package alert

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-bouts/hems-lookout/adsb"
)

const (
	globeURL        = "https://globe.adsbexchange.com/"
	timestampLayout = "2006-01-02T15:04:05"
)

// Message is the payload of a notification.
type Message struct {
	Timestamp string `json:"timestamp"`
	Reg       string `json:"reg"`
	Callsign  string `json:"callsign"`
	Location  string `json:"location"`
	Href      string `json:"href"`
}

func NewMessage(state adsb.AircraftState, location string, now time.Time) Message {
	return Message{
		Timestamp: now.Format(timestampLayout),
		Reg:       state.Reg,
		Callsign:  state.Callsign,
		Location:  location,
		Href:      Href(state),
	}
}

// Href links to the aircraft on the ADS-B Exchange map, or to its position
// when the ICAO hex code is unknown.
func Href(state adsb.AircraftState) string {
	q := url.Values{}
	if state.Icao != "" {
		q.Set("icao", state.Icao)
		return globeURL + "?" + q.Encode()
	}

	return fmt.Sprintf("%s?lat=%s&lon=%s", globeURL,
		strconv.FormatFloat(state.Pos.Lat, 'f', -1, 64),
		strconv.FormatFloat(state.Pos.Lon, 'f', -1, 64))
}

func (m Message) String() string {
	return strings.TrimSpace(m.Callsign+" "+m.Reg) + "\n" + m.Location
}
