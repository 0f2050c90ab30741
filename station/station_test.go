package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionFor(t *testing.T) {
	tests := []struct {
		ident  string
		region Region
	}{
		{"KJFK", NorthAmerican},
		{"CYYZ", NorthAmerican},
		{"PHNL", NorthAmerican},
		{"TJSJ", NorthAmerican},
		{"EGLL", International},
		{"YSSY", International},
		{"ZBAA", International},
		{"MMMX", NorthAmerican},
		{"MYNN", NorthAmerican},
		{"MUHA", International},
		{"MDSD", International},
	}
	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			region, err := RegionFor(tt.ident)
			require.NoError(t, err)
			assert.Equal(t, tt.region, region)
		})
	}

	t.Run("unknown prefix", func(t *testing.T) {
		_, err := RegionFor("QQQQ")
		assert.ErrorIs(t, err, ErrBadStation)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := RegionFor("")
		assert.ErrorIs(t, err, ErrBadStation)
	})
}

func TestUsesNAFormat(t *testing.T) {
	na, err := UsesNAFormat("KJFK")
	require.NoError(t, err)
	assert.True(t, na)

	na, err = UsesNAFormat("EGLL")
	require.NoError(t, err)
	assert.False(t, na)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("KJFK"))
	assert.ErrorIs(t, Validate("KJF"), ErrBadStation)
	assert.ErrorIs(t, Validate("KJFKX"), ErrBadStation)
	assert.ErrorIs(t, Validate("QQQQ"), ErrBadStation)
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "NA", NorthAmerican.String())
	assert.Equal(t, "IN", International.String())
}

func TestPrefixLookup(t *testing.T) {
	region, err := PrefixLookup{}.Region("KJFK")
	require.NoError(t, err)
	assert.Equal(t, NorthAmerican, region)
}
