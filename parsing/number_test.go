package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeNumber(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		n := MakeNumber("10")
		require.NotNil(t, n)
		assert.Equal(t, "10", n.Repr)
		assert.Equal(t, 10.0, n.Float(-1))
		assert.Equal(t, "one zero", n.Spoken)
	})

	t.Run("decimal", func(t *testing.T) {
		n := MakeNumber("1.2")
		require.NotNil(t, n)
		assert.Equal(t, 1.2, n.Float(-1))
		assert.Equal(t, "one point two", n.Spoken)
	})

	t.Run("minus prefix", func(t *testing.T) {
		n := MakeNumber("M05")
		require.NotNil(t, n)
		assert.Equal(t, "M05", n.Repr)
		assert.Equal(t, -5.0, n.Float(0))
		assert.Equal(t, "minus five", n.Spoken)
	})

	t.Run("simple fraction", func(t *testing.T) {
		n := MakeNumber("1/2")
		require.NotNil(t, n)
		assert.True(t, n.IsFraction())
		assert.Equal(t, 0.5, n.Float(-1))
		assert.Equal(t, 1, *n.Numerator)
		assert.Equal(t, 2, *n.Denominator)
		assert.Equal(t, "one half", n.Spoken)
	})

	t.Run("compound fraction", func(t *testing.T) {
		n := MakeNumber("11/2")
		require.NotNil(t, n)
		assert.Equal(t, 1.5, n.Float(-1))
		assert.Equal(t, 3, *n.Numerator)
		assert.Equal(t, 2, *n.Denominator)
		assert.Equal(t, "1 1/2", n.Normalized)
		assert.Equal(t, "one and one half", n.Spoken)
	})

	t.Run("less than one quarter", func(t *testing.T) {
		n := MakeNumber("M1/4")
		require.NotNil(t, n)
		assert.Nil(t, n.Value)
		assert.Equal(t, "less than one quarter", n.Spoken)
	})

	t.Run("CAVOK", func(t *testing.T) {
		n := MakeNumber("CAVOK")
		require.NotNil(t, n)
		assert.Equal(t, 9999.0, n.Float(0))
		assert.Equal(t, "ceiling and visibility ok", n.Spoken)
	})

	t.Run("variable wind marker", func(t *testing.T) {
		n := MakeNumber("VRB")
		require.NotNil(t, n)
		assert.Nil(t, n.Value)
		assert.Equal(t, "variable", n.Spoken)
	})

	t.Run("cardinal direction", func(t *testing.T) {
		n := MakeNumber("NE")
		require.NotNil(t, n)
		assert.Equal(t, "NE", n.Repr)
		assert.Equal(t, 45.0, n.Float(0))
	})

	t.Run("thousands collapse", func(t *testing.T) {
		n := MakeNumber("25000")
		require.NotNil(t, n)
		assert.Equal(t, "two five thousand", n.Spoken)
	})

	t.Run("unknown markers", func(t *testing.T) {
		assert.Nil(t, MakeNumber(""))
		assert.Nil(t, MakeNumber("////"))
		assert.Nil(t, MakeNumber("UNKN"))
	})
}

func TestMakeNumberWithLiteral(t *testing.T) {
	n := MakeNumberWith("360", NumberConfig{Speak: "360", Literal: true})
	require.NotNil(t, n)
	assert.Equal(t, 360.0, n.Float(0))
	assert.Equal(t, "three six zero", n.Spoken)
}

func TestUnpackFraction(t *testing.T) {
	assert.Equal(t, "2 1/2", UnpackFraction("5/2"))
	assert.Equal(t, "1/2", UnpackFraction("1/2"))
	assert.Equal(t, "garbage", UnpackFraction("garbage"))
}

func TestDedupe(t *testing.T) {
	t.Run("all duplicates", func(t *testing.T) {
		got := Dedupe([]string{"a", "b", "a", "c", "b"}, false)
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("neighbors only", func(t *testing.T) {
		got := Dedupe([]string{"a", "a", "b", "a"}, true)
		assert.Equal(t, []string{"a", "b", "a"}, got)
	})
}

func TestIsUnknown(t *testing.T) {
	assert.True(t, IsUnknown("////"))
	assert.True(t, IsUnknown("XX"))
	assert.True(t, IsUnknown("UNK"))
	assert.False(t, IsUnknown("10SM"))
}
