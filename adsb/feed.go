package adsb

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Feed is the content of an ADS-B feed file. States are kept undecoded so
// that a single bad record does not spoil the whole file.
type Feed struct {
	States [][]interface{} `json:"states"`
}

func DecodeFeed(r io.Reader) (Feed, error) {
	var f Feed
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return f, err
	}
	return f, nil
}

func LoadFeed(path string) (Feed, error) {
	file, err := os.Open(path)
	if err != nil {
		return Feed{}, err
	}
	defer file.Close()

	f, err := DecodeFeed(file)
	if err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Encode writes f as indented JSON.
func (f Feed) Encode(w io.Writer) error {
	if f.States == nil {
		f.States = [][]interface{}{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(f)
}
