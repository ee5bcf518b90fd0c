// Package adsb decodes aircraft state records as found in ADS-B feed files.
//
// A record is an ordered JSON array:
//
//	[icao, callsign, reg, squawk, lat, lon, alt, vrate, track, speed]
//
// Fields are loosely typed: any of them may be null, alt is either a number
// of feet or the string "ground".
package adsb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/a-bouts/hems-lookout/latlon"
)

// RecordLen is the number of fields in a state record.
const RecordLen = 10

const (
	fieldIcao = iota
	fieldCallsign
	fieldReg
	fieldSquawk
	fieldLat
	fieldLon
	fieldAlt
	fieldVrate
	fieldTrack
	fieldSpeed
)

var fieldNames = [RecordLen]string{"icao", "callsign", "reg", "squawk", "lat", "lon", "alt", "vrate", "track", "speed"}

var (
	// ErrInsufficientData is returned for records with nothing to report or
	// without a position and track.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrMalformedRecord is returned for records that do not follow the
	// record layout.
	ErrMalformedRecord = errors.New("malformed record")
)

type Altitude struct {
	Feet   int
	Ground bool
}

func (a Altitude) String() string {
	if a.Ground {
		return "ground"
	}
	return fmt.Sprintf("%d ft", a.Feet)
}

type AircraftState struct {
	Icao         string
	Callsign     string
	Reg          string
	Squawk       string
	Pos          latlon.GeoPoint
	Alt          Altitude
	VerticalRate float64
	Track        float64
	Speed        float64
}

// NewAircraftState decodes a state record. Callsign and registration are
// trimmed; when both are empty the ICAO hex code stands in for the callsign.
func NewAircraftState(record []interface{}) (AircraftState, error) {
	var s AircraftState

	if len(record) != RecordLen {
		return s, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRecord, len(record), RecordLen)
	}

	var err error
	if s.Icao, err = stringField(record, fieldIcao); err != nil {
		return s, err
	}
	if s.Callsign, err = stringField(record, fieldCallsign); err != nil {
		return s, err
	}
	if s.Reg, err = stringField(record, fieldReg); err != nil {
		return s, err
	}
	if s.Squawk, err = stringField(record, fieldSquawk); err != nil {
		return s, err
	}

	if s.Icao == "" && s.Callsign == "" && s.Reg == "" {
		return s, fmt.Errorf("%w: no icao, callsign or reg", ErrInsufficientData)
	}

	for _, i := range []int{fieldLat, fieldLon, fieldTrack} {
		if record[i] == nil {
			return s, fmt.Errorf("%w: no %s", ErrInsufficientData, fieldNames[i])
		}
	}

	if s.Pos.Lat, err = floatField(record, fieldLat); err != nil {
		return s, err
	}
	if s.Pos.Lon, err = floatField(record, fieldLon); err != nil {
		return s, err
	}
	if s.Track, err = floatField(record, fieldTrack); err != nil {
		return s, err
	}
	if s.VerticalRate, err = floatField(record, fieldVrate); err != nil {
		return s, err
	}
	if s.Speed, err = floatField(record, fieldSpeed); err != nil {
		return s, err
	}
	if s.Alt, err = altitudeField(record, fieldAlt); err != nil {
		return s, err
	}

	if s.Callsign == "" && s.Reg == "" {
		s.Callsign = s.Icao
	}

	return s, nil
}

func stringField(record []interface{}, i int) (string, error) {
	v, err := cast.ToStringE(record[i])
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedRecord, fieldNames[i], err)
	}
	return strings.TrimSpace(v), nil
}

// floatField reads a numeric field, null reads as 0.
func floatField(record []interface{}, i int) (float64, error) {
	if record[i] == nil {
		return 0, nil
	}
	v, err := cast.ToFloat64E(record[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, fieldNames[i], err)
	}
	return v, nil
}

func altitudeField(record []interface{}, i int) (Altitude, error) {
	switch v := record[i].(type) {
	case nil:
		return Altitude{}, nil
	case string:
		if strings.EqualFold(strings.TrimSpace(v), "ground") {
			return Altitude{Ground: true}, nil
		}
	}

	feet, err := cast.ToIntE(record[i])
	if err != nil {
		return Altitude{}, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, fieldNames[i], err)
	}
	return Altitude{Feet: feet}, nil
}

// Record encodes s back into the record layout.
func (s AircraftState) Record() []interface{} {
	var alt interface{} = s.Alt.Feet
	if s.Alt.Ground {
		alt = "ground"
	}

	return []interface{}{s.Icao, s.Callsign, s.Reg, s.Squawk, s.Pos.Lat, s.Pos.Lon, alt, s.VerticalRate, s.Track, s.Speed}
}
