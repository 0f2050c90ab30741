package parsing

import (
	"strconv"
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
)

// NumberConfig tunes MakeNumberWith. Zero value means: keep the token as the
// Repr, derive the spoken form from the parsed value, and collapse trailing
// zeros into hundreds/thousands when speaking.
type NumberConfig struct {
	Repr    string
	Speak   string
	Literal bool
}

// IsUnknown reports whether the token is a missing-value marker: empty, a
// known unknown abbreviation, or made entirely of placeholder characters.
func IsUnknown(value string) bool {
	if value == "" {
		return true
	}
	switch strings.ToUpper(value) {
	case "UNKN", "UNK", "UKN":
		return true
	}
	for _, ch := range value {
		if ch != '/' && ch != 'X' && ch != '.' {
			return false
		}
	}
	return true
}

// Dedupe removes duplicate tokens while keeping order. If onlyNeighbors is
// true, only adjacent duplicates are collapsed.
func Dedupe(items []string, onlyNeighbors bool) []string {
	ret := make([]string, 0, len(items))
	for _, item := range items {
		if onlyNeighbors {
			if len(ret) == 0 || ret[len(ret)-1] != item {
				ret = append(ret, item)
			}
			continue
		}
		seen := false
		for _, prev := range ret {
			if prev == item {
				seen = true
				break
			}
		}
		if !seen {
			ret = append(ret, item)
		}
	}
	return ret
}

// UnpackFraction rewrites an improper fraction as a mixed number: 5/2 -> 2 1/2.
func UnpackFraction(num string) string {
	parts := strings.Split(num, "/")
	values := make([]int, 0, 2)
	for _, p := range parts {
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return num
		}
		values = append(values, v)
	}
	if len(values) != 2 || values[0] <= values[1] {
		return num
	}
	numerator, denominator := values[0], values[1]
	over := numerator / denominator
	rem := numerator % denominator
	return strconv.Itoa(over) + " " + strconv.Itoa(rem) + "/" + strconv.Itoa(denominator)
}

var spokenPostfix = [...][2]string{
	{" zero zero zero", " thousand"},
	{" zero zero", " hundred"},
}

// SpokenNumber converts a number string into its radio-spoken form.
// If literal, trailing zeros are not collapsed into hundreds/thousands.
//
//	1.2   -> one point two
//	1 1/2 -> one and one half
//	25000 -> two five thousand
func SpokenNumber(num string, literal bool) string {
	parts := []string{}
	for _, part := range strings.Fields(num) {
		if frac, ok := spokenFractions[part]; ok {
			parts = append(parts, frac)
			continue
		}
		words := []string{}
		for _, ch := range part {
			if word, ok := spokenDigits[ch]; ok {
				words = append(words, word)
			}
		}
		val := strings.Join(words, " ")
		if !literal {
			for _, rep := range spokenPostfix {
				if strings.HasSuffix(val, rep[0]) {
					val = val[:len(val)-len(rep[0])] + rep[1]
				}
			}
		}
		parts = append(parts, val)
	}
	return strings.Join(parts, " and ")
}

// makeFraction decodes a token containing a '/' into a fraction Number.
// Multi-digit numerators are compound: the leading digits are whole units
// multiplied through the denominator, e.g. 11/2 -> 1 1/2 -> 3/2.
func makeFraction(value string, cfg NumberConfig) *bulletin.Number {
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return nil
	}
	numStr, denStr := parts[0], parts[1]
	// 2-1/2 but not -2 1/2
	if strings.Contains(numStr, "-") && !strings.HasPrefix(numStr, "-") {
		numStr = strings.ReplaceAll(numStr, "-", " ")
	}
	denominator, err := strconv.Atoi(denStr)
	if err != nil || denominator == 0 {
		return nil
	}
	var numerator int
	if len(numStr) > 1 {
		whole, err := strconv.Atoi(strings.TrimSpace(numStr[:len(numStr)-1]))
		if err != nil {
			return nil
		}
		last, err := strconv.Atoi(numStr[len(numStr)-1:])
		if err != nil {
			return nil
		}
		numerator = whole*denominator + last
		value = strconv.Itoa(numerator) + "/" + strconv.Itoa(denominator)
	} else {
		numerator, err = strconv.Atoi(numStr)
		if err != nil {
			return nil
		}
	}
	repr := cfg.Repr
	if repr == "" {
		repr = value
	}
	unpacked := UnpackFraction(value)
	return &bulletin.Number{
		Repr:        repr,
		Value:       bulletin.FloatPtr(float64(numerator) / float64(denominator)),
		Spoken:      SpokenNumber(unpacked, cfg.Literal),
		Numerator:   bulletin.IntPtr(numerator),
		Denominator: bulletin.IntPtr(denominator),
		Normalized:  unpacked,
	}
}

// MakeNumber decodes a numeric token with default options.
func MakeNumber(value string) *bulletin.Number {
	return MakeNumberWith(value, NumberConfig{})
}

// MakeNumberWith decodes a numeric token into a Number, handling special
// values (CAVOK, VRB, calm markers), named cardinal directions, OCR noise,
// embedded minus markers, ABV/BLW/flight-level prefixes, and fractions.
// Returns nil for empty, unknown, or unparseable input.
func MakeNumberWith(value string, cfg NumberConfig) *bulletin.Number {
	if value == "" || IsUnknown(value) {
		return nil
	}
	if sp, ok := specialNumbers[value]; ok {
		repr := cfg.Repr
		if repr == "" {
			repr = value
		}
		n := &bulletin.Number{Repr: repr, Spoken: sp.spoken}
		if sp.value != nil {
			n.Value = bulletin.FloatPtr(*sp.value)
		}
		return n
	}
	if deg, ok := cardinals[value]; ok {
		if cfg.Repr == "" {
			cfg.Repr = value
		}
		value = strconv.Itoa(deg)
	}
	// Remove spurious characters and OCR confusions
	value = strings.TrimRight(value, "M.")
	value = strings.ReplaceAll(value, "O", "0")
	value = strings.ReplaceAll(value, "+", "")
	value = strings.ReplaceAll(value, ",", "")
	if strings.Contains(value, "/") {
		return makeFraction(value, cfg)
	}
	// Minus values with stray leading characters, like 0M04
	valStr := value
	if strings.Contains(valStr, "M") {
		valStr = strings.ReplaceAll(valStr, "MM", "-")
		valStr = strings.ReplaceAll(valStr, "M", "-")
		for valStr != "" && valStr[0] != '-' {
			valStr = valStr[1:]
		}
	}
	speakPrefix := ""
	if strings.HasPrefix(valStr, "ABV ") {
		speakPrefix += "above "
		valStr = valStr[4:]
	}
	if strings.HasPrefix(valStr, "BLW ") {
		speakPrefix += "below "
		valStr = valStr[4:]
	}
	literal := cfg.Literal
	if strings.HasPrefix(valStr, "FL") {
		speakPrefix += "flight level "
		valStr = valStr[2:]
		literal = true
	}
	if valStr == "" {
		return nil
	}
	var parsed float64
	var display string
	if strings.Contains(value, ".") {
		f, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil
		}
		parsed = f
		display = strconv.FormatFloat(f, 'g', -1, 64)
	} else {
		i, err := strconv.Atoi(valStr)
		if err != nil {
			return nil
		}
		parsed = float64(i)
		display = strconv.Itoa(i)
	}
	speak := cfg.Speak
	if speak == "" {
		speak = display
	}
	repr := cfg.Repr
	if repr == "" {
		repr = value
	}
	return &bulletin.Number{
		Repr:   repr,
		Value:  bulletin.FloatPtr(parsed),
		Spoken: speakPrefix + SpokenNumber(speak, literal),
	}
}
