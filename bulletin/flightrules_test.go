package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vis(repr string, value float64) *Number {
	return &Number{Repr: repr, Value: FloatPtr(value)}
}

func layer(cloudType string, base int) Cloud {
	return Cloud{Type: cloudType, Base: IntPtr(base)}
}

func TestCeiling(t *testing.T) {
	t.Run("lowest broken layer", func(t *testing.T) {
		clouds := []Cloud{layer("FEW", 10), layer("BKN", 25), layer("OVC", 80)}
		ceiling := Ceiling(clouds)
		require.NotNil(t, ceiling)
		assert.Equal(t, "BKN", ceiling.Type)
		assert.Equal(t, 25, *ceiling.Base)
	})

	t.Run("vertical visibility counts", func(t *testing.T) {
		ceiling := Ceiling([]Cloud{layer("VV", 3)})
		require.NotNil(t, ceiling)
		assert.Equal(t, "VV", ceiling.Type)
	})

	t.Run("scattered is not a ceiling", func(t *testing.T) {
		assert.Nil(t, Ceiling([]Cloud{layer("FEW", 10), layer("SCT", 20)}))
	})

	t.Run("unknown base skipped", func(t *testing.T) {
		clouds := []Cloud{{Type: "BKN"}, layer("OVC", 40)}
		ceiling := Ceiling(clouds)
		require.NotNil(t, ceiling)
		assert.Equal(t, "OVC", ceiling.Type)
	})

	t.Run("no clouds", func(t *testing.T) {
		assert.Nil(t, Ceiling(nil))
	})
}

func TestFlightRulesUnder(t *testing.T) {
	bkn := func(base int) *Cloud {
		c := layer("BKN", base)
		return &c
	}

	tests := []struct {
		name     string
		vis      *Number
		ceiling  *Cloud
		expected FlightRules
	}{
		{"clear and ten", vis("10", 10), nil, VFR},
		{"marginal visibility", vis("5", 5), nil, MVFR},
		{"marginal ceiling", vis("10", 10), bkn(25), MVFR},
		{"low visibility", vis("2", 2), nil, IFR},
		{"low ceiling", vis("10", 10), bkn(8), IFR},
		{"very low visibility", vis("1/2", 0.5), nil, LIFR},
		{"very low ceiling", vis("10", 10), bkn(4), LIFR},
		{"no visibility defaults to IFR", nil, nil, IFR},
		{"greater than six is VFR", &Number{Repr: "P6SM"}, nil, VFR},
		{"CAVOK is VFR", &Number{Repr: "CAVOK", Value: FloatPtr(9999)}, nil, VFR},
		{"less-than prefix is zero", &Number{Repr: "M1/4"}, nil, LIFR},
		{"meters converted", vis("0800", 800), nil, LIFR},
		{"meters VFR", vis("9999", 9999), nil, VFR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FlightRulesUnder(tt.vis, tt.ceiling))
		})
	}
}

func TestFlightRulesString(t *testing.T) {
	assert.Equal(t, "VFR", VFR.String())
	assert.Equal(t, "MVFR", MVFR.String())
	assert.Equal(t, "IFR", IFR.String())
	assert.Equal(t, "LIFR", LIFR.String())
	assert.Equal(t, "Unknown", FlightRules(9).String())
}
