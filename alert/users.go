package alert

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/a-bouts/hems-lookout/latlon"
)

type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func (l Location) Point() latlon.GeoPoint {
	return latlon.GeoPoint{Lat: l.Lat, Lon: l.Lon}
}

// User is a notification recipient with the locations they watch.
type User struct {
	Recipient string     `json:"recipient"`
	Locations []Location `json:"locations"`
}

func DecodeUsers(r io.Reader) ([]User, error) {
	var users []User
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func LoadUsers(path string) ([]User, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	users, err := DecodeUsers(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return users, nil
}
