package alert

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/hems-lookout/adsb"
)

type Notification struct {
	Recipient string  `json:"recipient"`
	Message   Message `json:"message"`
}

// Notifications checks every record against every user location. Records
// that cannot be decoded are logged and skipped.
func (f *Filter) Notifications(records [][]interface{}, users []User) []Notification {
	var notifications []Notification

	for _, record := range records {
		state, err := adsb.NewAircraftState(record)
		if err != nil {
			fields := log.Fields{"record": record}
			if errors.Is(err, adsb.ErrInsufficientData) {
				log.WithFields(fields).WithError(err).Debug("Skip record")
			} else {
				log.WithFields(fields).WithError(err).Error("Skip record")
			}
			continue
		}

		notifications = append(notifications, f.StateNotifications(state, users)...)
	}

	return notifications
}

func (f *Filter) StateNotifications(state adsb.AircraftState, users []User) []Notification {
	var notifications []Notification

	for _, user := range users {
		for _, loc := range user.Locations {
			if !f.IsNotifiable(state, loc.Point()) {
				continue
			}

			log.WithFields(log.Fields{
				"recipient": user.Recipient,
				"location":  loc.Name,
				"callsign":  state.Callsign,
				"reg":       state.Reg,
			}).Debug("Notify")

			notifications = append(notifications, Notification{
				Recipient: user.Recipient,
				Message:   NewMessage(state, loc.Name, f.Now()),
			})
		}
	}

	return notifications
}
