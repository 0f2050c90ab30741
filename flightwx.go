// Package flightwx decodes raw METAR observations and TAF forecasts into
// typed data, keeping a log of every repair the sanitizer made along the way.
package flightwx

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/internal/observability"
	"github.com/couchcryptid/flightwx/metar"
	"github.com/couchcryptid/flightwx/station"
	"github.com/couchcryptid/flightwx/taf"
)

// Observation is a decoded METAR with the units it was decoded under and the
// repairs made while cleaning it.
type Observation struct {
	Data         *bulletin.ObservationData
	Units        *bulletin.Units
	Sanitization *bulletin.Sanitization
}

// Forecast is a decoded TAF with the units it was decoded under and the
// repairs made while cleaning it.
type Forecast struct {
	Data         *bulletin.ForecastData
	Units        *bulletin.Units
	Sanitization *bulletin.Sanitization
}

// Decoder decodes raw reports. The zero value is not usable; construct with New.
type Decoder struct {
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
	lookup  station.Lookup
}

// New creates a Decoder with the given observability and time source. Nil
// arguments fall back to the defaults: slog.Default, a real clock, and the
// prefix-table station lookup. A nil metrics disables recording.
func New(logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock, lookup station.Lookup) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if lookup == nil {
		lookup = station.PrefixLookup{}
	}
	return &Decoder{
		logger:  logger,
		metrics: metrics,
		clock:   clock,
		lookup:  lookup,
	}
}

type decodeOptions struct {
	issued *time.Time
}

// Option adjusts a single decode call.
type Option func(*decodeOptions)

// WithIssued anchors the report's day-hour-minute times to the given issue
// date instead of the decoder's clock.
func WithIssued(issued time.Time) Option {
	return func(o *decodeOptions) {
		t := issued.UTC()
		o.issued = &t
	}
}

// DecodeMETAR decodes one raw METAR observation. The station ident is taken
// from the report itself.
func (d *Decoder) DecodeMETAR(raw string, opts ...Option) (*Observation, error) {
	start := d.clock.Now()
	ident, ok := identFrom(raw)
	if !ok {
		d.abort("metar", "empty", raw)
		return nil, station.ErrBadStation
	}
	issued := d.resolveIssued(opts)
	data, units, sans, err := metar.Parse(ident, raw, issued)
	if err != nil {
		d.abort("metar", "bad_station", raw)
		return nil, err
	}
	d.decoded("metar", start, sans)
	if sans.ErrorsFound() {
		d.logger.Warn("observation needed repair",
			"station", data.Station,
			"removed", sans.Removed,
			"replaced", sans.Replaced)
	}
	return &Observation{Data: data, Units: units, Sanitization: sans}, nil
}

// DecodeTAF decodes one raw TAF forecast. The station ident is taken from
// the report itself.
func (d *Decoder) DecodeTAF(raw string, opts ...Option) (*Forecast, error) {
	start := d.clock.Now()
	ident, ok := identFrom(raw)
	if !ok {
		d.abort("taf", "empty", raw)
		return nil, station.ErrBadStation
	}
	issued := d.resolveIssued(opts)
	data, units, sans, err := taf.Parse(ident, raw, issued)
	if err != nil {
		d.abort("taf", "bad_station", raw)
		return nil, err
	}
	d.decoded("taf", start, sans)
	if d.metrics != nil {
		d.metrics.ForecastPeriods.Observe(float64(len(data.Forecast)))
	}
	if sans.ErrorsFound() {
		d.logger.Warn("forecast needed repair",
			"station", data.Station,
			"removed", sans.Removed,
			"replaced", sans.Replaced)
	}
	return &Forecast{Data: data, Units: units, Sanitization: sans}, nil
}

func (d *Decoder) resolveIssued(opts []Option) *time.Time {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.issued != nil {
		return o.issued
	}
	now := d.clock.Now().UTC()
	return &now
}

func (d *Decoder) abort(kind, reason, raw string) {
	if d.metrics != nil {
		d.metrics.DecodeAborts.WithLabelValues(kind, reason).Inc()
	}
	d.logger.Error("report rejected", "kind", kind, "reason", reason, "raw", raw)
}

func (d *Decoder) decoded(kind string, start time.Time, sans *bulletin.Sanitization) {
	if d.metrics == nil {
		return
	}
	d.metrics.ReportsDecoded.WithLabelValues(kind).Inc()
	d.metrics.DecodeDuration.WithLabelValues(kind).Observe(d.clock.Since(start).Seconds())
	d.metrics.SanitizerEdits.Observe(float64(len(sans.Removed) + len(sans.Replaced)))
}

// headerPrefixes never carry the station ident.
var headerPrefixes = []string{"METAR", "SPECI", "TAF", "AMD", "COR"}

// identFrom returns the station ident from the first non-header token.
func identFrom(raw string) (string, bool) {
	for _, item := range strings.Fields(strings.ToUpper(raw)) {
		if isHeaderPrefix(item) {
			continue
		}
		if len(item) > 4 {
			item = item[:4]
		}
		return item, true
	}
	return "", false
}

func isHeaderPrefix(item string) bool {
	for _, prefix := range headerPrefixes {
		if item == prefix {
			return true
		}
	}
	return false
}
