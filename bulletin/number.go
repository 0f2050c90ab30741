package bulletin

// Number is a decoded numeric token. Repr preserves the original text, Value
// is nil when the token carries no resolvable magnitude (unknown markers,
// "less than" prefixes), and Spoken is the radio-readable form.
//
// Fractional values carry Numerator/Denominator and a Normalized mixed-number
// form ("5/2" -> "2 1/2"); IsFraction reports whether they are set.
type Number struct {
	Repr   string
	Value  *float64
	Spoken string

	Numerator   *int
	Denominator *int
	Normalized  string
}

// IsFraction reports whether the number was parsed from a fraction token.
func (n *Number) IsFraction() bool {
	return n != nil && n.Numerator != nil && n.Denominator != nil
}

// Float returns the numeric value, or the fallback if absent.
func (n *Number) Float(fallback float64) float64 {
	if n == nil || n.Value == nil {
		return fallback
	}
	return *n.Value
}

// Int returns the truncated numeric value, or the fallback if absent.
func (n *Number) Int(fallback int) int {
	if n == nil || n.Value == nil {
		return fallback
	}
	return int(*n.Value)
}

// FloatPtr boxes a float64 for optional Number values.
func FloatPtr(v float64) *float64 { return &v }

// IntPtr boxes an int for optional fields.
func IntPtr(v int) *int { return &v }
