// Command hems-testdata prints synthetic ADS-B states around a location,
// each one flagged with the notification outcome it must produce.
//
// Mode distance places aircraft just inside and just outside the max
// distance, heading for the location. Mode bearing places them at a fixed
// distance, with tracks just inside and just outside the max deviation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/hems-lookout/adsb"
	"github.com/a-bouts/hems-lookout/latlon"
	"github.com/a-bouts/hems-lookout/synth"
)

func generate(g *synth.Generator, mode string, distance float64) ([]adsb.AircraftState, error) {
	switch mode {
	case "distance":
		return g.DistanceStates(synth.DefaultDistances, synth.DefaultBearings)
	case "bearing":
		return g.BearingStates(distance, synth.DefaultVectors)
	}
	return nil, fmt.Errorf("unknown mode '%s'", mode)
}

func write(w io.Writer, format string, states []adsb.AircraftState) error {
	switch format {
	case "json":
		return synth.WriteJSON(w, states)
	case "csv":
		return synth.WriteCSV(w, states)
	}
	return fmt.Errorf("unknown format '%s'", format)
}

type config struct {
	mode       string
	format     string
	distance   float64
	centre     latlon.GeoPoint
	debug      bool
	cpuprofile bool
}

// parseFlags reads the configuration from args, then HEMS_TESTDATA_*
// environment variables.
func parseFlags(args []string) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("hems-testdata", flag.ExitOnError)
	fs.StringVar(&cfg.mode, "mode", "distance", "distance or bearing")
	fs.StringVar(&cfg.format, "format", "json", "json feed file, or csv for map visualisers")
	fs.Float64Var(&cfg.distance, "distance", 69.999, "distance from the location in bearing mode, in km")
	fs.Float64Var(&cfg.centre.Lat, "lat", synth.Ludwigshafen.Lat, "location latitude")
	fs.Float64Var(&cfg.centre.Lon, "lon", synth.Ludwigshafen.Lon, "location longitude")
	fs.BoolVar(&cfg.debug, "debug", false, "")
	fs.BoolVar(&cfg.cpuprofile, "cpuprofile", false, "")

	err := ff.Parse(fs, args, ff.WithEnvVarPrefix("HEMS_TESTDATA"))
	return cfg, err
}

func run(w io.Writer, cfg config) error {
	if cfg.cpuprofile {
		defer profile.Start().Stop()
	}

	g := synth.NewGenerator(cfg.centre)

	states, err := generate(g, cfg.mode, cfg.distance)
	if err != nil {
		return fmt.Errorf("generate states: %w", err)
	}

	log.WithFields(log.Fields{
		"mode":   cfg.mode,
		"centre": g.Centre,
		"states": len(states),
	}).Debug("Generated")

	if err := write(w, cfg.format, states); err != nil {
		return fmt.Errorf("write states: %w", err)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("Bad configuration")
	}

	if cfg.debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(os.Stdout, cfg); err != nil {
		log.WithError(err).Fatal("Generate test data")
	}
}
