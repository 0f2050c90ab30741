package bulletin

import "strings"

// FlightRules is the VFR/MVFR/IFR/LIFR category derived from visibility and
// ceiling, ordered from best to worst conditions.
type FlightRules int

const (
	VFR FlightRules = iota
	MVFR
	IFR
	LIFR
)

var flightRuleNames = [...]string{"VFR", "MVFR", "IFR", "LIFR"}

func (f FlightRules) String() string {
	if f < VFR || f > LIFR {
		return "Unknown"
	}
	return flightRuleNames[f]
}

// Ceiling returns the lowest layer that counts as a ceiling (broken,
// overcast, or vertical visibility with a known base), or nil. Assumes the
// clouds are already sorted lowest to highest.
func Ceiling(clouds []Cloud) *Cloud {
	for i := range clouds {
		c := &clouds[i]
		if c.Base == nil {
			continue
		}
		switch c.Type {
		case "BKN", "OVC", "VV":
			return c
		}
	}
	return nil
}

// Missing-data proxies for the classifier: worst realistic values rather
// than category defaults, so the ladder below stays the single source of
// thresholds.
const (
	noVisibilityProxy = 2.0 // miles; common practice caps unknown vis at IFR
	noCeilingProxy    = 99  // hundreds of feet
	metersPerMile     = 0.000621371
)

// FlightRulesUnder classifies conditions from a visibility value and ceiling
// layer. Either input may be nil.
//
// Special representations map to numeric proxies before thresholding: CAVOK
// and P6-prefixed visibility count as 10 miles, M-prefixed ("less than") as
// zero, and a bare 4-digit value is meters converted to miles.
func FlightRulesUnder(visibility *Number, ceiling *Cloud) FlightRules {
	var vis float64
	switch {
	case visibility == nil:
		vis = noVisibilityProxy
	case visibility.Repr == "CAVOK" || strings.HasPrefix(visibility.Repr, "P6"):
		vis = 10
	case strings.HasPrefix(visibility.Repr, "M"):
		vis = 0
	case visibility.Value == nil:
		vis = noVisibilityProxy
	case len(visibility.Repr) == 4:
		vis = *visibility.Value * metersPerMile
	default:
		vis = *visibility.Value
	}

	cld := noCeilingProxy
	if ceiling != nil && ceiling.Base != nil && *ceiling.Base != 0 {
		cld = *ceiling.Base
	}

	if vis <= 5 || cld <= 30 {
		if vis < 3 || cld < 10 {
			if vis < 1 || cld < 5 {
				return LIFR
			}
			return IFR
		}
		return MVFR
	}
	return VFR
}
