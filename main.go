package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jasonlvhit/gocron"
	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/hems-lookout/adsb"
	"github.com/a-bouts/hems-lookout/alert"
	"github.com/a-bouts/hems-lookout/latlon"
)

type lookout struct {
	filter *alert.Filter
	users  []alert.User
	files  []string
	out    io.Writer
	nlog   *NotificationLog
}

func newNavigator(formula string) (latlon.Navigator, error) {
	switch formula {
	case "spherical":
		return latlon.Spherical{}, nil
	case "haversine":
		return latlon.Haversine{}, nil
	}
	return nil, fmt.Errorf("unknown formula '%s'", formula)
}

// run checks every feed file once. A file that cannot be read is logged and
// skipped.
func (l *lookout) run() {
	for _, file := range l.files {
		feed, err := adsb.LoadFeed(file)
		if err != nil {
			log.WithError(err).Errorf("Load feed '%s'", file)
			continue
		}

		notifications := l.filter.Notifications(feed.States, l.users)
		log.WithFields(log.Fields{
			"file":          file,
			"states":        len(feed.States),
			"notifications": len(notifications),
		}).Debug("Feed checked")

		if len(notifications) > 0 {
			fmt.Fprintf(l.out, "=== %s ===\n\n", file)
		}

		for _, n := range notifications {
			fmt.Fprintf(l.out, "*** %s ***\n%s\n", n.Recipient, n.Message)
			if l.nlog != nil {
				l.nlog.Sent(n)
			}
		}
	}
}

type config struct {
	usersFile      string
	trackDeviation float64
	maxDistance    float64
	formula        string
	logFile        string
	logMaxSize     int
	every          uint64
	debug          bool
	cpuprofile     bool
	files          []string
}

// parseFlags reads the configuration from args, then HEMS_LOOKOUT_*
// environment variables, then the -config JSON file.
func parseFlags(args []string) (config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	var cfg config

	fs := flag.NewFlagSet("hems-lookout", flag.ExitOnError)
	fs.StringVar(&cfg.usersFile, "users", filepath.Join(home, "hems-lookout-users.json"), "user settings file")
	fs.Float64Var(&cfg.trackDeviation, "track-deviation", alert.DefaultTrackDeviation, "max deviation of the track from the bearing to a location, in degrees")
	fs.Float64Var(&cfg.maxDistance, "max-distance", alert.DefaultMaxDistance, "max distance to a location, in km")
	fs.StringVar(&cfg.formula, "formula", "spherical", "distance and bearing formula: spherical or haversine")
	fs.StringVar(&cfg.logFile, "log-file", filepath.Join(home, "hems-lookout.log"), "notification log, empty to disable")
	fs.IntVar(&cfg.logMaxSize, "log-max-size", 10, "notification log size before rotation, in MB")
	fs.Uint64Var(&cfg.every, "every", 0, "check the feeds again every n seconds, 0 to check once")
	fs.BoolVar(&cfg.debug, "debug", false, "")
	fs.BoolVar(&cfg.cpuprofile, "cpuprofile", false, "")
	_ = fs.String("config", "", "JSON config file")

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("HEMS_LOOKOUT"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser)); err != nil {
		return cfg, err
	}

	cfg.files = fs.Args()
	return cfg, nil
}

// watch checks the feeds once, then every cfg.every seconds when set. It
// only returns early, on a scheduling error.
func (l *lookout) watch(cfg config) error {
	if cfg.cpuprofile {
		defer profile.Start().Stop()
	}

	if cfg.logFile != "" {
		l.nlog = OpenNotificationLog(cfg.logFile, cfg.logMaxSize)
		defer l.nlog.Close()
	}

	l.run()

	if cfg.every == 0 {
		return nil
	}

	s := gocron.NewScheduler()
	if err := s.Every(cfg.every).Seconds().Do(l.run); err != nil {
		return fmt.Errorf("schedule every %d seconds: %w", cfg.every, err)
	}
	<-s.Start()
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

	nav, err := newNavigator(cfg.formula)
	if err != nil {
		log.WithError(err).Fatal("Bad configuration")
	}

	users, err := alert.LoadUsers(cfg.usersFile)
	if err != nil {
		log.WithError(err).Fatal("Load users")
	}

	filter := alert.NewFilter()
	filter.Nav = nav
	filter.TrackDeviation = cfg.trackDeviation
	filter.MaxDistance = cfg.maxDistance

	l := &lookout{
		filter: filter,
		users:  users,
		files:  cfg.files,
		out:    os.Stdout,
	}

	log.Infof("Watch %d feeds for %d users", len(l.files), len(users))

	if err := l.watch(cfg); err != nil {
		log.WithError(err).Fatal("Watch feeds")
	}
}
