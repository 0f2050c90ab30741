// Package remarks decodes the fixed-position and coded groups found in a
// report's remarks section: decimal temperatures, sea-level pressure,
// precipitation amounts, pressure tendency, and static status codes.
package remarks

import (
	"sort"
	"strconv"
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/parsing"
)

// remarkElements are single-token codes with fixed meanings.
var remarkElements = map[string]string{
	"$":        "ASOS requires maintenance",
	"AO1":      "Automated with no precipitation sensor",
	"AO2":      "Automated with precipitation sensor",
	"ADVISORY": "Advisory only. Do not use for flight planning",
	"BINOVC":   "Breaks in Overcast",
	"FZRANO":   "Freezing rain information not available",
	"NOSPECI":  "No SPECI reports taken",
	"P0000":    "Trace amount of rain in the last hour",
	"PNO":      "Precipitation amount not available",
	"PRESFR":   "Pressure Falling Rapidly",
	"PRESRR":   "Pressure Rising Rapidly",
	"PWINO":    "Precipitation identifier information not available",
	"RVRNO":    "Runway Visual Range missing",
	"SLPNO":    "Sea level pressure not available",
	"SOG":      "Snow on the ground",
	"TSNO":     "Thunderstorm information not available",
}

// remarkGroups are multi-token phrases matched against the raw remarks text.
var remarkGroups = map[string]string{
	"ACFT MSHP": "Aircraft mishap",
}

var pressureTendencies = map[byte]string{
	'0': "Increasing, then decreasing",
	'1': "Increasing, then steady",
	'2': "Increasing steadily or unsteadily",
	'3': "Decreasing or steady, then increasing",
	'4': "Steady",
	'5': "Decreasing, then increasing",
	'6': "Decreasing, then steady",
	'7': "Decreasing steadily or unsteadily",
	'8': "Steady or increasing, then decreasing",
	'9': "Unknown",
}

// DecimalCode parses a 4-digit signed decimal temperature group.
// Ex: 1045 -> -4.5    0237 -> 23.7
func DecimalCode(code string, repr string) *bulletin.Number {
	if len(code) < 4 {
		return nil
	}
	whole, err := strconv.Atoi(code[1:3])
	if err != nil {
		return nil
	}
	sign := ""
	if code[0] == '1' {
		sign = "-"
	}
	number := sign + strconv.Itoa(whole) + "." + code[3:4]
	if repr == "" {
		repr = code
	}
	return parsing.MakeNumberWith(number, parsing.NumberConfig{Repr: repr})
}

// tempDewDecimal removes a T-group and returns the decimal temperature and
// dewpoint values.
func tempDewDecimal(codes []string) ([]string, *bulletin.Number, *bulletin.Number) {
	for i := len(codes) - 1; i >= 0; i-- {
		code := codes[i]
		if (len(code) == 5 || len(code) == 9) && code[0] == 'T' && parsing.IsDigits(code[1:]) {
			temp := DecimalCode(code[1:5], "")
			var dew *bulletin.Number
			if len(code) == 9 {
				dew = DecimalCode(code[5:], "")
			}
			return append(codes[:i], codes[i+1:]...), temp, dew
		}
	}
	return codes, nil, nil
}

// tempMinMax removes a 4-group and returns the 24-hour maximum and minimum
// temperatures.
func tempMinMax(codes []string) ([]string, *bulletin.Number, *bulletin.Number) {
	for i, code := range codes {
		if len(code) == 9 && code[0] == '4' && parsing.IsDigits(code) {
			maximum, minimum := DecimalCode(code[1:5], ""), DecimalCode(code[5:], "")
			return append(codes[:i], codes[i+1:]...), maximum, minimum
		}
	}
	return codes, nil, nil
}

// precipSnow removes P-group hourly precipitation and 4/xxx snow depth.
func precipSnow(codes []string) ([]string, *bulletin.Number, *bulletin.Number) {
	var precip, snow *bulletin.Number
	for i := len(codes) - 1; i >= 0; i-- {
		code := codes[i]
		if len(code) != 5 {
			continue
		}
		switch {
		// P0213
		case code[0] == 'P' && parsing.IsDigits(code[1:]):
			precip = parsing.MakeNumberWith(code[1:3]+"."+code[3:], parsing.NumberConfig{Repr: code})
			codes = append(codes[:i], codes[i+1:]...)
		// 4/012
		case code[:2] == "4/" && parsing.IsDigits(code[2:]):
			snow = parsing.MakeNumberWith(code[2:], parsing.NumberConfig{Repr: code})
			codes = append(codes[:i], codes[i+1:]...)
		}
	}
	return codes, precip, snow
}

// seaLevelPressure removes an SLP group, always decoded as hPa.
func seaLevelPressure(codes []string) ([]string, *bulletin.Number) {
	for i, code := range codes {
		if len(code) == 6 && strings.HasPrefix(code, "SLP") && parsing.IsDigits(code[3:]) {
			prefix := "10"
			if code[3] > '4' {
				prefix = "9"
			}
			value := prefix + code[3:5] + "." + code[5:]
			return append(codes[:i], codes[i+1:]...), parsing.MakeNumberWith(value, parsing.NumberConfig{Repr: code})
		}
	}
	return codes, nil
}

// parsePressure decodes a 5-digit pressure tendency group.
func parsePressure(code string) *bulletin.PressureTendency {
	change, err := strconv.ParseFloat(code[2:4]+"."+code[4:], 64)
	if err != nil {
		return nil
	}
	return &bulletin.PressureTendency{
		Repr:     code,
		Tendency: pressureTendencies[code[1]],
		Change:   change,
	}
}

// parsePrecipitation decodes a 5-digit precipitation amount group.
func parsePrecipitation(code string) *bulletin.Number {
	return parsing.MakeNumberWith(code[1:3]+"."+code[3:], parsing.NumberConfig{Repr: code})
}

// fiveDigitCodes removes the keyed 5-digit groups: six-hour temperatures (1/2),
// pressure tendency (5), precipitation totals (6/7), and sunshine minutes (9).
func fiveDigitCodes(codes []string, data *bulletin.RemarksData) []string {
	for i := len(codes) - 1; i >= 0; i-- {
		code := codes[i]
		if len(code) != 5 || !parsing.IsDigits(code) {
			continue
		}
		switch code[0] {
		case '1':
			data.MaximumTemperature6 = DecimalCode(code[1:], code)
		case '2':
			data.MinimumTemperature6 = DecimalCode(code[1:], code)
		case '5':
			data.PressureTendency = parsePressure(code)
		case '6':
			data.Precip36Hours = parsePrecipitation(code)
		case '7':
			data.Precip24Hours = parsePrecipitation(code)
		case '9':
			data.SunshineMinutes = parsing.MakeNumberWith(code[2:], parsing.NumberConfig{Repr: code})
		default:
			continue
		}
		codes = append(codes[:i], codes[i+1:]...)
	}
	return codes
}

// findCodes removes known static codes and weather began/ended groups from
// the remarks string, returning the leftover tokens and the decoded codes
// sorted by their raw text.
func findCodes(rmk string) ([]string, []bulletin.Code) {
	var ret []bulletin.Code
	for key, value := range remarkGroups {
		if strings.Contains(rmk, key) {
			ret = append(ret, bulletin.Code{Repr: key, Value: value})
			rmk = strings.ReplaceAll(rmk, key, "")
		}
	}
	codes := strings.Fields(rmk)
	for i := len(codes) - 1; i >= 0; i-- {
		code := codes[i]
		if value, ok := remarkElements[code]; ok {
			ret = append(ret, bulletin.Code{Repr: code, Value: value})
			codes = append(codes[:i], codes[i+1:]...)
			continue
		}
		// Weather began/ended: RAB15, TSE0159
		if len(code) == 5 && (code[2] == 'B' || code[2] == 'E') && parsing.IsDigits(code[3:]) {
			if wx, ok := parsing.WxTranslations[code[:2]]; ok {
				state := "began"
				if code[2] == 'E' {
					state = "ended"
				}
				ret = append(ret, bulletin.Code{Repr: code, Value: wx + " " + state + " at :" + code[3:]})
				codes = append(codes[:i], codes[i+1:]...)
			}
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Repr < ret[j].Repr })
	return codes, ret
}

// Parse decodes a remarks string. Returns nil when the string is empty.
func Parse(rmk string) *bulletin.RemarksData {
	if rmk == "" {
		return nil
	}
	data := &bulletin.RemarksData{}
	codes, parsedCodes := findCodes(rmk)
	data.Codes = parsedCodes
	codes, data.TemperatureDecimal, data.DewpointDecimal = tempDewDecimal(codes)
	codes, data.MaximumTemperature24, data.MinimumTemperature24 = tempMinMax(codes)
	codes, data.PrecipHourly, data.SnowDepth = precipSnow(codes)
	codes, data.SeaLevelPressure = seaLevelPressure(codes)
	fiveDigitCodes(codes, data)
	return data
}
