package bulletin

// Code pairs a raw coded token with its expanded description.
type Code struct {
	Repr  string
	Value string
}

// RunwayVisibility is a decoded runway visual range group, e.g. R06/0200D.
type RunwayVisibility struct {
	Repr               string
	Runway             string
	Visibility         *Number
	VariableVisibility []Number
	Trend              *Code
}

// PressureTendency is a decoded 5-digit pressure tendency remark group.
type PressureTendency struct {
	Repr     string
	Tendency string
	Change   float64
}

// RemarksData holds the decoded coded groups from a report's remarks section.
type RemarksData struct {
	Codes                []Code
	TemperatureDecimal   *Number
	DewpointDecimal      *Number
	MinimumTemperature6  *Number
	MaximumTemperature6  *Number
	MinimumTemperature24 *Number
	MaximumTemperature24 *Number
	PressureTendency     *PressureTendency
	Precip36Hours        *Number
	Precip24Hours        *Number
	PrecipHourly         *Number
	SnowDepth            *Number
	SeaLevelPressure     *Number
	SunshineMinutes      *Number
}

// ObservationData is one fully decoded METAR observation.
type ObservationData struct {
	Raw       string
	Sanitized string
	Station   string
	Time      *Timestamp

	WindDirection         *Number
	WindSpeed             *Number
	WindGust              *Number
	WindVariableDirection []Number

	Visibility       *Number
	Altimeter        *Number
	Temperature      *Number
	Dewpoint         *Number
	RelativeHumidity *float64

	Clouds           []Cloud
	RunwayVisibility []RunwayVisibility
	WxCodes          []Code
	Other            []string

	FlightRules FlightRules
	Remarks     string
	RemarksInfo *RemarksData
}

// PeriodType identifies how a forecast period modifies the timeline.
type PeriodType string

// Forecast period markers. FROM periods form the base timeline; TEMPO, INTER,
// and probability periods overlay it without replacing the underlying period.
const (
	PeriodFrom      PeriodType = "FROM"
	PeriodBecoming  PeriodType = "BECMG"
	PeriodTemporary PeriodType = "TEMPO"
	PeriodIntermit  PeriodType = "INTER"
)

// ForecastPeriod is one decoded TAF validity segment.
type ForecastPeriod struct {
	Raw       string
	Sanitized string

	Type            PeriodType
	Probability     *Number
	StartTime       *Timestamp
	EndTime         *Timestamp
	TransitionStart *Timestamp

	WindDirection         *Number
	WindSpeed             *Number
	WindGust              *Number
	WindVariableDirection []Number
	WindShear             string

	Visibility *Number
	Altimeter  *Number

	Clouds     []Cloud
	Icing      []string
	Turbulence []string
	WxCodes    []Code
	Other      []string

	FlightRules FlightRules
}

// IsOverlay reports whether the period overlays the base FROM-chain rather
// than advancing it. Overlay periods never contribute to time inference.
func (p *ForecastPeriod) IsOverlay() bool {
	return p.Type == PeriodTemporary || p.Probability != nil
}

// ForecastData is one fully decoded TAF report.
type ForecastData struct {
	Raw       string
	Sanitized string
	Station   string
	Time      *Timestamp

	Forecast  []ForecastPeriod
	StartTime *Timestamp
	EndTime   *Timestamp

	MaxTemp string
	MinTemp string

	Remarks     string
	RemarksInfo *RemarksData

	IsAmended    bool
	IsCorrection bool

	// Oceania-format extras: bare altimeter and temperature digit groups.
	Alts  []string
	Temps []string
}
