package metar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/station"
)

func TestGetRemarks(t *testing.T) {
	t.Run("after altimeter", func(t *testing.T) {
		body, remarks := GetRemarks("KJFK 032151Z 16008KT 10SM 27/23 A3013 RMK AO2 SLP141")
		assert.Equal(t, []string{"KJFK", "032151Z", "16008KT", "10SM", "27/23", "A3013"}, body)
		assert.Equal(t, "RMK AO2 SLP141", remarks)
	})

	t.Run("signifier without altimeter", func(t *testing.T) {
		body, remarks := GetRemarks("EGLL 032150Z 24008KT 9999 NOSIG")
		assert.Equal(t, []string{"EGLL", "032150Z", "24008KT", "9999"}, body)
		assert.Equal(t, "NOSIG", remarks)
	})

	t.Run("no remarks", func(t *testing.T) {
		body, remarks := GetRemarks("KJFK 032151Z 16008KT 10SM 27/23 A3013")
		assert.Equal(t, []string{"KJFK", "032151Z", "16008KT", "10SM", "27/23", "A3013"}, body)
		assert.Empty(t, remarks)
	})
}

func TestParseAltimeter(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{"A2992", 29.92},
		{"Q1013", 1013},
		{"Q0998", 998},
		{"3013", 30.13},
		{"QNH3003INS", 30.03},
		{"Q1000/10", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			n := ParseAltimeter(tt.value)
			require.NotNil(t, n)
			assert.Equal(t, tt.value, n.Repr)
			assert.Equal(t, tt.expected, n.Float(0))
		})
	}

	t.Run("rejects non-altimeter tokens", func(t *testing.T) {
		assert.Nil(t, ParseAltimeter("12/10"))
		assert.Nil(t, ParseAltimeter("A12"))
		assert.Nil(t, ParseAltimeter("FEW034"))
	})
}

func TestGetAltimeter(t *testing.T) {
	t.Run("regional preference", func(t *testing.T) {
		units := bulletin.NorthAmerican()
		data, alt := GetAltimeter([]string{"10SM", "Q1022", "A3013"}, &units, station.NorthAmerican)

		assert.Equal(t, []string{"10SM"}, data)
		require.NotNil(t, alt)
		assert.Equal(t, 30.13, alt.Float(0))
		assert.Equal(t, "inHg", units.Altimeter)
	})

	t.Run("international takes hPa", func(t *testing.T) {
		units := bulletin.International()
		_, alt := GetAltimeter([]string{"A3013", "Q1022"}, &units, station.International)

		require.NotNil(t, alt)
		assert.Equal(t, 1022.0, alt.Float(0))
		assert.Equal(t, "hPa", units.Altimeter)
	})

	t.Run("no altimeter", func(t *testing.T) {
		units := bulletin.NorthAmerican()
		data, alt := GetAltimeter([]string{"10SM", "27/23"}, &units, station.NorthAmerican)
		assert.Equal(t, []string{"10SM", "27/23"}, data)
		assert.Nil(t, alt)
	})
}

func TestGetTempAndDew(t *testing.T) {
	t.Run("standard pair", func(t *testing.T) {
		data, temp, dew := GetTempAndDew([]string{"10SM", "27/23"})
		assert.Equal(t, []string{"10SM"}, data)
		require.NotNil(t, temp)
		assert.Equal(t, 27.0, temp.Float(0))
		require.NotNil(t, dew)
		assert.Equal(t, 23.0, dew.Float(0))
	})

	t.Run("negative values", func(t *testing.T) {
		_, temp, dew := GetTempAndDew([]string{"M05/M08"})
		require.NotNil(t, temp)
		assert.Equal(t, -5.0, temp.Float(0))
		require.NotNil(t, dew)
		assert.Equal(t, -8.0, dew.Float(0))
	})

	t.Run("missing dewpoint", func(t *testing.T) {
		_, temp, dew := GetTempAndDew([]string{"27/MM"})
		require.NotNil(t, temp)
		assert.Equal(t, 27.0, temp.Float(0))
		assert.Nil(t, dew)
	})

	t.Run("not a temperature", func(t *testing.T) {
		data, temp, dew := GetTempAndDew([]string{"R06/0200D"})
		assert.Equal(t, []string{"R06/0200D"}, data)
		assert.Nil(t, temp)
		assert.Nil(t, dew)
	})
}

func TestParseRunwayVisibility(t *testing.T) {
	t.Run("single value with trend", func(t *testing.T) {
		rv := ParseRunwayVisibility("R06/0200D")
		assert.Equal(t, "R06/0200D", rv.Repr)
		assert.Equal(t, "06", rv.Runway)
		require.NotNil(t, rv.Visibility)
		assert.Equal(t, 200.0, rv.Visibility.Float(0))
		require.NotNil(t, rv.Trend)
		assert.Equal(t, "decreasing", rv.Trend.Value)
	})

	t.Run("variable range", func(t *testing.T) {
		rv := ParseRunwayVisibility("R24L/0500V0800")
		assert.Equal(t, "24L", rv.Runway)
		assert.Nil(t, rv.Visibility)
		require.Len(t, rv.VariableVisibility, 2)
		assert.Equal(t, 500.0, rv.VariableVisibility[0].Float(0))
		assert.Equal(t, 800.0, rv.VariableVisibility[1].Float(0))
	})

	t.Run("prefixed value has no magnitude", func(t *testing.T) {
		rv := ParseRunwayVisibility("R28/P2000")
		require.NotNil(t, rv.Visibility)
		assert.Nil(t, rv.Visibility.Value)
		assert.Contains(t, rv.Visibility.Spoken, "greater than")
	})
}

func TestRelativeHumidity(t *testing.T) {
	rh := RelativeHumidity(27, 23, "C")
	assert.InDelta(t, 0.79, rh, 0.02)

	same := RelativeHumidity(15, 15, "C")
	assert.InDelta(t, 1.0, same, 0.001)
}

func TestParse(t *testing.T) {
	issued := time.Date(2023, 10, 3, 22, 0, 0, 0, time.UTC)

	t.Run("north american report", func(t *testing.T) {
		report := "KJFK 032151Z 16008KT 10SM FEW034 FEW130 BKN250 27/23 A3013"
		data, units, sans, err := Parse("KJFK", report, &issued)

		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "KJFK", data.Station)
		require.NotNil(t, data.Time)
		require.NotNil(t, data.Time.Time)
		assert.Equal(t, time.Date(2023, 10, 3, 21, 51, 0, 0, time.UTC), *data.Time.Time)

		require.NotNil(t, data.WindDirection)
		assert.Equal(t, 160.0, data.WindDirection.Float(0))
		require.NotNil(t, data.WindSpeed)
		assert.Equal(t, 8.0, data.WindSpeed.Float(0))
		assert.Nil(t, data.WindGust)

		require.NotNil(t, data.Visibility)
		assert.Equal(t, 10.0, data.Visibility.Float(0))

		require.Len(t, data.Clouds, 3)
		assert.Equal(t, "FEW", data.Clouds[0].Type)
		assert.Equal(t, 34, *data.Clouds[0].Base)
		assert.Equal(t, "BKN", data.Clouds[2].Type)
		assert.Equal(t, 250, *data.Clouds[2].Base)

		require.NotNil(t, data.Temperature)
		assert.Equal(t, 27.0, data.Temperature.Float(0))
		require.NotNil(t, data.Dewpoint)
		assert.Equal(t, 23.0, data.Dewpoint.Float(0))
		require.NotNil(t, data.RelativeHumidity)

		require.NotNil(t, data.Altimeter)
		assert.Equal(t, 30.13, data.Altimeter.Float(0))
		assert.Equal(t, "inHg", units.Altimeter)

		assert.Equal(t, bulletin.VFR, data.FlightRules)
		assert.Empty(t, data.Remarks)
		assert.False(t, sans.ErrorsFound())
	})

	t.Run("international CAVOK report", func(t *testing.T) {
		report := "EGLL 032150Z 24008KT CAVOK 17/09 Q1022"
		data, units, _, err := Parse("EGLL", report, &issued)

		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "EGLL", data.Station)

		require.NotNil(t, data.Visibility)
		assert.Equal(t, "CAVOK", data.Visibility.Repr)
		assert.Empty(t, data.Clouds)

		require.NotNil(t, data.Altimeter)
		assert.Equal(t, 1022.0, data.Altimeter.Float(0))
		assert.Equal(t, "hPa", units.Altimeter)
		assert.Equal(t, bulletin.VFR, data.FlightRules)
	})

	t.Run("remarks decoded", func(t *testing.T) {
		report := "KJFK 032151Z 16008KT 10SM FEW034 27/23 A3013 RMK AO2 SLP141 T02670209"
		data, _, _, err := Parse("KJFK", report, &issued)

		require.NoError(t, err)
		require.NotNil(t, data)
		assert.Equal(t, "RMK AO2 SLP141 T02670209", data.Remarks)
		require.NotNil(t, data.RemarksInfo)
		require.NotNil(t, data.RemarksInfo.TemperatureDecimal)
		assert.Equal(t, 26.7, data.RemarksInfo.TemperatureDecimal.Float(0))
	})

	t.Run("runway visibility", func(t *testing.T) {
		report := "EGLL 032150Z 24008KT 0500 R27L/0400V0600U FG VV002 11/11 Q1022"
		data, _, _, err := Parse("EGLL", report, &issued)

		require.NoError(t, err)
		require.NotNil(t, data)
		require.Len(t, data.RunwayVisibility, 1)
		assert.Equal(t, "27L", data.RunwayVisibility[0].Runway)
		require.Len(t, data.WxCodes, 1)
		assert.Equal(t, "Fog", data.WxCodes[0].Value)
		assert.Equal(t, bulletin.LIFR, data.FlightRules)
	})

	t.Run("bad station", func(t *testing.T) {
		_, _, _, err := Parse("QQQQ", "QQQQ 032151Z", &issued)
		assert.ErrorIs(t, err, station.ErrBadStation)
	})

	t.Run("empty report", func(t *testing.T) {
		data, _, _, err := Parse("KJFK", "", &issued)
		require.NoError(t, err)
		assert.Nil(t, data)
	})
}
