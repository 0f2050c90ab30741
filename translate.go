package flightwx

import "github.com/couchcryptid/flightwx/bulletin"

// Translator renders decoded report data as human-readable text. Decoding
// already expands coded tokens into Code values and spoken number forms;
// implementations compose those into prose for their audience.
type Translator interface {
	TranslateObservation(data *bulletin.ObservationData, units *bulletin.Units) string
	TranslatePeriod(period *bulletin.ForecastPeriod, units *bulletin.Units) string
}
