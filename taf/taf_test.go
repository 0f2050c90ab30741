package taf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/parsing"
	"github.com/couchcryptid/flightwx/station"
)

func TestFixReportHeader(t *testing.T) {
	assert.Equal(t, "TAF AMD KJFK 172030Z", FixReportHeader("TAF KJFK AMD 172030Z"))
	assert.Equal(t, "COR TAF KJFK 172030Z", FixReportHeader("COR TAF KJFK 172030Z"))
	assert.Equal(t, "TAF AMD KJFK 172030Z", FixReportHeader("TAF KJFK 172030Z AMD"))
	assert.Equal(t, "KJFK 172030Z", FixReportHeader("KJFK 172030Z"))
}

func TestGetTAFRemarks(t *testing.T) {
	body, remarks := GetTAFRemarks("1721/1824 14009KT P6SM RMK NXT FCST BY 180000Z")
	assert.Equal(t, "1721/1824 14009KT P6SM", body)
	assert.Equal(t, "RMK NXT FCST BY 180000Z", remarks)

	body, remarks = GetTAFRemarks("1721/1824 14009KT P6SM")
	assert.Equal(t, "1721/1824 14009KT P6SM", body)
	assert.Empty(t, remarks)
}

func TestSanitizeLine(t *testing.T) {
	sans := &bulletin.Sanitization{}
	assert.Equal(t, "TEMPO 1802/1806", SanitizeLine("TEMP0 1802/1806", sans))
	assert.True(t, sans.ErrorsFound())

	sans = &bulletin.Sanitization{}
	assert.Equal(t, "BECMG 1810/1812", SanitizeLine("BECMG1810/1812", sans))
	assert.True(t, sans.ExtraSpacesNeeded)
}

func TestSplitTAF(t *testing.T) {
	t.Run("marker and prefix lines", func(t *testing.T) {
		body := "1721/1824 14009KT P6SM FEW250 FM180400 VRB03KT P6SM SCT150 BECMG 1810/1812 OVC008"
		lines := SplitTAF(body)
		require.Len(t, lines, 3)
		assert.Equal(t, "1721/1824 14009KT P6SM FEW250", lines[0])
		assert.Equal(t, "FM180400 VRB03KT P6SM SCT150", lines[1])
		assert.Equal(t, "BECMG 1810/1812 OVC008", lines[2])
	})

	t.Run("probability binds to following marker", func(t *testing.T) {
		body := "1721/1824 14009KT PROB30 TEMPO 1802/1806 2SM BR"
		lines := SplitTAF(body)
		require.Len(t, lines, 2)
		assert.Equal(t, "1721/1824 14009KT", lines[0])
		assert.Equal(t, "PROB30 TEMPO 1802/1806 2SM BR", lines[1])
	})

	t.Run("bare time range starts a new period", func(t *testing.T) {
		body := "1721/1806 14009KT 1806/1824 21012KT"
		lines := SplitTAF(body)
		require.Len(t, lines, 2)
		assert.Equal(t, "1721/1806 14009KT", lines[0])
		assert.Equal(t, "1806/1824 21012KT", lines[1])
	})
}

func TestGetTypeAndTimes(t *testing.T) {
	t.Run("full range", func(t *testing.T) {
		data, periodType, start, end, transition := getTypeAndTimes([]string{"1721/1824", "14009KT"})
		assert.Equal(t, []string{"14009KT"}, data)
		assert.Equal(t, bulletin.PeriodFrom, periodType)
		assert.Equal(t, "1721", start)
		assert.Equal(t, "1824", end)
		assert.Empty(t, transition)
	})

	t.Run("FM prefix", func(t *testing.T) {
		data, periodType, start, end, _ := getTypeAndTimes([]string{"FM180400", "VRB03KT"})
		assert.Equal(t, []string{"VRB03KT"}, data)
		assert.Equal(t, bulletin.PeriodFrom, periodType)
		assert.Equal(t, "1804", start)
		assert.Empty(t, end)
	})

	t.Run("FM with TL", func(t *testing.T) {
		data, _, start, end, _ := getTypeAndTimes([]string{"FM180400", "TL180600", "VRB03KT"})
		assert.Equal(t, []string{"VRB03KT"}, data)
		assert.Equal(t, "1804", start)
		assert.Equal(t, "1806", end)
	})

	t.Run("BECMG reinterprets start as transition", func(t *testing.T) {
		data, periodType, start, end, transition := getTypeAndTimes([]string{"BECMG", "1810/1812", "OVC008"})
		assert.Equal(t, []string{"OVC008"}, data)
		assert.Equal(t, bulletin.PeriodBecoming, periodType)
		assert.Equal(t, "1810", transition)
		assert.Equal(t, "1812", start)
		assert.Empty(t, end)
	})

	t.Run("TEMPO marker", func(t *testing.T) {
		_, periodType, start, end, _ := getTypeAndTimes([]string{"TEMPO", "1802/1806", "2SM"})
		assert.Equal(t, bulletin.PeriodTemporary, periodType)
		assert.Equal(t, "1802", start)
		assert.Equal(t, "1806", end)
	})
}

func TestGetWindShear(t *testing.T) {
	data, shear := getWindShear([]string{"WS020/07040KT", "P6SM"})
	assert.Equal(t, []string{"P6SM"}, data)
	assert.Equal(t, "WS020/07040", shear)

	data, shear = getWindShear([]string{"P6SM"})
	assert.Equal(t, []string{"P6SM"}, data)
	assert.Empty(t, shear)
}

func TestGetAltIceTurb(t *testing.T) {
	data, altimeter, icing, turbulence := getAltIceTurb([]string{"QNH2980INS", "611005", "540553", "P6SM"})
	assert.Equal(t, []string{"P6SM"}, data)
	require.NotNil(t, altimeter)
	assert.Equal(t, 29.80, altimeter.Float(0))
	assert.Equal(t, []string{"611005"}, icing)
	assert.Equal(t, []string{"540553"}, turbulence)
}

func TestGetTempMinAndMax(t *testing.T) {
	t.Run("standard groups", func(t *testing.T) {
		data, tempMax, tempMin := GetTempMinAndMax([]string{"TX20/1812Z", "TN15/1806Z", "NSW"})
		assert.Equal(t, []string{"NSW"}, data)
		assert.Equal(t, "TX20/1812Z", tempMax)
		assert.Equal(t, "TN15/1806Z", tempMin)
	})

	t.Run("mistyped prefixes repaired by value", func(t *testing.T) {
		_, tempMax, tempMin := GetTempMinAndMax([]string{"T20/1812Z", "T10/1806Z"})
		assert.Equal(t, "TX20/1812Z", tempMax)
		assert.Equal(t, "TN10/1806Z", tempMin)
	})

	t.Run("no groups", func(t *testing.T) {
		data, tempMax, tempMin := GetTempMinAndMax([]string{"NSW"})
		assert.Equal(t, []string{"NSW"}, data)
		assert.Empty(t, tempMax)
		assert.Empty(t, tempMin)
	})
}

func mustTime(t *testing.T, value string) *bulletin.Timestamp {
	t.Helper()
	issued := time.Date(2023, 6, 17, 20, 30, 0, 0, time.UTC)
	ts := parsing.MakeTimestamp(value, false, &issued)
	require.NotNil(t, ts)
	require.NotNil(t, ts.Time)
	return ts
}

func TestFindMissingTAFTimes(t *testing.T) {
	t.Run("from chain", func(t *testing.T) {
		start := mustTime(t, "1721")
		end := mustTime(t, "1824")
		lines := []bulletin.ForecastPeriod{
			{Type: bulletin.PeriodFrom, StartTime: mustTime(t, "1721")},
			{Type: bulletin.PeriodTemporary, StartTime: mustTime(t, "1802"), EndTime: mustTime(t, "1806")},
			{Type: bulletin.PeriodFrom, StartTime: mustTime(t, "1804")},
			{Type: bulletin.PeriodFrom, StartTime: mustTime(t, "1810")},
		}

		lines = FindMissingTAFTimes(lines, start, end)

		// Base period ends adopt the following base period's start.
		require.NotNil(t, lines[0].EndTime)
		assert.Equal(t, *lines[2].StartTime.Time, *lines[0].EndTime.Time)
		require.NotNil(t, lines[2].EndTime)
		assert.Equal(t, *lines[3].StartTime.Time, *lines[2].EndTime.Time)
		// Last base period runs to the report end.
		require.NotNil(t, lines[3].EndTime)
		assert.Equal(t, *end.Time, *lines[3].EndTime.Time)
		// Overlay periods keep their own window.
		assert.Equal(t, "1802", lines[1].StartTime.Repr)
		assert.Equal(t, "1806", lines[1].EndTime.Repr)
	})

	t.Run("interior periods with no times", func(t *testing.T) {
		start := mustTime(t, "1721")
		end := mustTime(t, "1824")
		lines := []bulletin.ForecastPeriod{
			{Type: bulletin.PeriodFrom, StartTime: mustTime(t, "1721"), EndTime: mustTime(t, "1824")},
			{Type: bulletin.PeriodFrom},
			{Type: bulletin.PeriodTemporary, StartTime: mustTime(t, "1802"), EndTime: mustTime(t, "1806")},
			{Type: bulletin.PeriodFrom},
			{Type: bulletin.PeriodFrom},
			{Type: bulletin.PeriodFrom, StartTime: mustTime(t, "1818")},
		}

		lines = FindMissingTAFTimes(lines, start, end)

		for _, i := range []int{0, 1, 3, 4, 5} {
			require.NotNil(t, lines[i].StartTime, "period %d start", i)
			require.NotNil(t, lines[i].EndTime, "period %d end", i)
		}
		assert.Equal(t, *end.Time, *lines[5].EndTime.Time)
		// The embedded overlay keeps exactly its parsed times.
		assert.Equal(t, "1802", lines[2].StartTime.Repr)
		assert.Equal(t, "1806", lines[2].EndTime.Repr)
	})
}

func TestGetTAFFlightRules(t *testing.T) {
	p6sm := func() *bulletin.Number { return &bulletin.Number{Repr: "P6SM"} }
	lines := []bulletin.ForecastPeriod{
		{Type: bulletin.PeriodFrom, Visibility: p6sm(), Clouds: []bulletin.Cloud{{Type: "FEW", Base: bulletin.IntPtr(250)}}},
		{Type: bulletin.PeriodTemporary, Visibility: parsing.MakeNumber("2")},
		{Type: bulletin.PeriodFrom, Clouds: []bulletin.Cloud{{Type: "OVC", Base: bulletin.IntPtr(8)}}},
	}

	lines = GetTAFFlightRules(lines)

	assert.Equal(t, bulletin.VFR, lines[0].FlightRules)
	// Overlay inherits the preceding clouds but keeps its own visibility.
	assert.Equal(t, bulletin.IFR, lines[1].FlightRules)
	// Missing visibility inherits P6SM; the OVC008 ceiling drives the category.
	assert.Equal(t, bulletin.IFR, lines[2].FlightRules)
}

func TestParse(t *testing.T) {
	issued := time.Date(2023, 6, 17, 20, 30, 0, 0, time.UTC)

	t.Run("two period forecast", func(t *testing.T) {
		report := "KJFK 172030Z 1721/1824 14009KT P6SM FEW250 FM180400 VRB03KT P6SM SCT150"
		data, units, sans, err := Parse("KJFK", report, &issued)

		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "KJFK", data.Station)
		require.NotNil(t, data.Time)
		assert.Equal(t, "172030Z", data.Time.Repr)
		assert.Equal(t, "sm", units.Visibility)
		assert.False(t, sans.ErrorsFound())

		require.NotNil(t, data.StartTime)
		assert.Equal(t, time.Date(2023, 6, 17, 21, 0, 0, 0, time.UTC), *data.StartTime.Time)
		require.NotNil(t, data.EndTime)
		assert.Equal(t, time.Date(2023, 6, 19, 0, 0, 0, 0, time.UTC), *data.EndTime.Time)

		require.Len(t, data.Forecast, 2)
		first, second := data.Forecast[0], data.Forecast[1]

		assert.Equal(t, bulletin.PeriodFrom, first.Type)
		require.NotNil(t, first.WindDirection)
		assert.Equal(t, 140.0, first.WindDirection.Float(0))
		require.NotNil(t, first.Visibility)
		assert.Nil(t, first.Visibility.Value)
		require.Len(t, first.Clouds, 1)
		assert.Equal(t, 250, *first.Clouds[0].Base)
		assert.Equal(t, bulletin.VFR, first.FlightRules)
		// First period end adopts the next period's start.
		require.NotNil(t, first.EndTime)
		assert.Equal(t, time.Date(2023, 6, 18, 4, 0, 0, 0, time.UTC), *first.EndTime.Time)

		require.NotNil(t, second.StartTime)
		assert.Equal(t, time.Date(2023, 6, 18, 4, 0, 0, 0, time.UTC), *second.StartTime.Time)
		// Last base period runs to the report end.
		require.NotNil(t, second.EndTime)
		assert.Equal(t, *data.EndTime.Time, *second.EndTime.Time)
	})

	t.Run("probability line", func(t *testing.T) {
		report := "KJFK 172030Z 1721/1824 14009KT P6SM PROB30 1802/1806 2SM BR"
		data, _, _, err := Parse("KJFK", report, &issued)

		require.NoError(t, err)
		require.Len(t, data.Forecast, 2)
		prob := data.Forecast[1]
		require.NotNil(t, prob.Probability)
		assert.Equal(t, 30.0, prob.Probability.Float(0))
		assert.True(t, prob.IsOverlay())
		require.Len(t, prob.WxCodes, 1)
		assert.Equal(t, "Mist", prob.WxCodes[0].Value)
	})

	t.Run("amended header", func(t *testing.T) {
		report := "TAF AMD KJFK 172030Z 1721/1824 14009KT P6SM"
		data, _, _, err := Parse("KJFK", report, &issued)

		require.NoError(t, err)
		assert.True(t, data.IsAmended)
		assert.False(t, data.IsCorrection)
	})

	t.Run("min and max temperatures", func(t *testing.T) {
		report := "KJFK 172030Z 1721/1824 14009KT P6SM TX28/1819Z TN17/1809Z"
		data, _, _, err := Parse("KJFK", report, &issued)

		require.NoError(t, err)
		assert.Equal(t, "TX28/1819Z", data.MaxTemp)
		assert.Equal(t, "TN17/1809Z", data.MinTemp)
	})

	t.Run("bad station", func(t *testing.T) {
		_, _, _, err := Parse("QQQQ", "QQQQ 172030Z 1721/1824 14009KT", &issued)
		assert.ErrorIs(t, err, station.ErrBadStation)
	})
}
