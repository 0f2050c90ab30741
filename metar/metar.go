// Package metar decodes a single METAR surface observation into typed data.
package metar

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/parsing"
	"github.com/couchcryptid/flightwx/remarks"
	"github.com/couchcryptid/flightwx/sanitize"
	"github.com/couchcryptid/flightwx/station"
)

// remarkSignifiers mark where the body of a METAR ends and remarks begin.
var remarkSignifiers = []string{
	" BLU", " BLU+", " WHT", " GRN", " YLO", " AMB", " RED", " ALL",
	" BECMG", " TEMPO", " INTER", " NOSIG", " RMK", " WIND", " QFE",
	" QFF", " INFO", " RWY", " CHECK",
}

// GetRemarks splits a report into body tokens and the remarks string. The
// split point is the altimeter group when one appears before the earliest
// remark signifier, since everything after the altimeter is remarks even
// without an RMK marker.
func GetRemarks(txt string) ([]string, string) {
	txt = strings.TrimSpace(strings.ReplaceAll(txt, "?", ""))
	altIndex := len(txt) + 1
	for _, item := range []string{" A2", " A3", " Q1", " Q0", " Q9"} {
		index := strings.Index(txt, item)
		if index > -1 && index < len(txt)-6 && parsing.IsDigits(txt[index+2:index+6]) {
			altIndex = index
		}
	}
	sigIndex := parsing.FindFirstInList(txt, remarkSignifiers)
	if sigIndex == -1 {
		sigIndex = len(txt) + 1
	}
	if sigIndex > altIndex && altIndex > -1 {
		return strings.Fields(strings.TrimSpace(txt[:altIndex+6])), txt[min(altIndex+7, len(txt)):]
	}
	if altIndex > sigIndex && sigIndex > -1 {
		return strings.Fields(strings.TrimSpace(txt[:sigIndex])), txt[sigIndex+1:]
	}
	return strings.Fields(txt), ""
}

// rvrCodes decode the prefix and trend letters in an RVR group.
var rvrCodes = map[byte]string{
	'M': "less than",
	'A': "greater than",
	'P': "greater than",
	'U': "increasing",
	'I': "increasing",
	'D': "decreasing",
	'F': "decreasing",
	'R': "decreasing",
	'N': "no change",
	'V': "variable",
}

func parseRVRNumber(value string) *bulletin.Number {
	if value == "" {
		return nil
	}
	raw, prefix := value, ""
	if p, ok := rvrCodes[value[0]]; ok {
		prefix = p
		value = value[1:]
	}
	number := parsing.MakeNumberWith(value, parsing.NumberConfig{Repr: raw})
	if number != nil && prefix != "" {
		number.Spoken = prefix + " " + number.Spoken
		number.Value = nil
	}
	return number
}

// ParseRunwayVisibility decodes one runway visual range group, e.g. R06/0200D.
func ParseRunwayVisibility(value string) bulletin.RunwayVisibility {
	raw := value
	var trend *bulletin.Code
	value = strings.ReplaceAll(value, "FT", "")
	if len(value) > 0 {
		if t, ok := rvrCodes[value[len(value)-1]]; ok {
			trend = &bulletin.Code{Repr: value[len(value)-1:], Value: t}
			value = value[:len(value)-1]
		}
	}
	parts := strings.Split(value[1:], "/")
	runway := parts[0]
	var visibility *bulletin.Number
	var variable []bulletin.Number
	if len(parts) > 1 && parts[1] != "" {
		var numbers []bulletin.Number
		for _, n := range strings.Split(parts[1], "V") {
			if num := parseRVRNumber(n); num != nil {
				numbers = append(numbers, *num)
			}
		}
		if len(numbers) == 1 {
			visibility = &numbers[0]
		} else {
			variable = numbers
		}
	}
	return bulletin.RunwayVisibility{
		Repr:               raw,
		Runway:             runway,
		Visibility:         visibility,
		VariableVisibility: variable,
		Trend:              trend,
	}
}

// GetRunwayVisibility removes every RVR token regardless of position and
// returns the decoded groups sorted by runway.
func GetRunwayVisibility(data []string) ([]string, []bulletin.RunwayVisibility) {
	var runwayVis []bulletin.RunwayVisibility
	remaining := data[:0:0]
	for _, item := range data {
		if parsing.IsRunwayVisibility(item) {
			runwayVis = append(runwayVis, ParseRunwayVisibility(item))
			continue
		}
		remaining = append(remaining, item)
	}
	sort.Slice(runwayVis, func(i, j int) bool { return runwayVis[i].Runway < runwayVis[j].Runway })
	return remaining, runwayVis
}

// ParseAltimeter decodes an altimeter token in hPa style (Q1013), inHg style
// (A2992 or QNH3003INS), or bare 4 digits. Returns nil when not an altimeter.
func ParseAltimeter(value string) *bulletin.Number {
	if len(value) < 4 {
		return nil
	}
	// QNH3003INS
	if len(value) >= 7 && strings.HasSuffix(value, "INS") {
		core := value[len(value)-7 : len(value)-3]
		if !parsing.IsDigits(core) {
			return nil
		}
		return parsing.MakeNumberWith(core[:2]+"."+core[2:], parsing.NumberConfig{Repr: value, Literal: true})
	}
	number := strings.ReplaceAll(value, ".", "")
	// Q1000/10
	if idx := strings.Index(number, "/"); idx > -1 {
		number = number[:idx]
	}
	if strings.HasPrefix(number, "QNH") {
		number = "Q" + number[3:]
	}
	if len(number) != 4 && len(number) != 5 {
		return nil
	}
	if !parsing.IsDigits(number[len(number)-4:]) {
		return nil
	}
	number = strings.TrimLeft(number, "AQ")
	if len(number) < 4 {
		return nil
	}
	switch number[0] {
	case '2', '3':
		number = number[:2] + "." + number[2:]
	case '0', '1':
	default:
		return nil
	}
	return parsing.MakeNumberWith(number, parsing.NumberConfig{Repr: value, Speak: number, Literal: true})
}

// GetAltimeter consumes up to two altimeter tokens from the end of the list.
// When both styles are present the regional default wins and the other is
// discarded. Updates the altimeter unit from the winning value.
func GetAltimeter(data []string, units *bulletin.Units, region station.Region) ([]string, *bulletin.Number) {
	var values []*bulletin.Number
	for i := 0; i < 2 && len(data) > 0; i++ {
		value := ParseAltimeter(data[len(data)-1])
		if value == nil {
			break
		}
		values = append(values, value)
		data = data[:len(data)-1]
	}
	if len(values) == 0 {
		return data, nil
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Float(0) < values[j].Float(0)
	})
	// inHg values sort below hPa ones, so NA takes the head, IN the tail.
	altimeter := values[0]
	if region != station.NorthAmerican {
		altimeter = values[len(values)-1]
	}
	if altimeter.Value != nil {
		if *altimeter.Value < 100 {
			units.Altimeter = "inHg"
		} else {
			units.Altimeter = "hPa"
		}
	}
	return data, altimeter
}

// GetTempAndDew consumes the first token with exactly one slash whose sides
// are digits-or-M or a known missing marker, handling a slash glued to either
// side.
func GetTempAndDew(data []string) ([]string, *bulletin.Number, *bulletin.Number) {
	for i := len(data) - 1; i >= 0; i-- {
		item := data[i]
		if !strings.Contains(item, "/") {
			continue
		}
		// ///07
		if item[0] == '/' {
			item = "/" + strings.TrimLeft(item, "/")
		} else if item[len(item)-1] == '/' {
			// 07///
			item = strings.TrimRight(item, "/") + "/"
		}
		tempdew := strings.Split(item, "/")
		if len(tempdew) != 2 {
			continue
		}
		valid := true
		for j, temp := range tempdew {
			if temp == "MM" || temp == "XX" {
				tempdew[j] = ""
			} else if temp != "" && !parsing.IsPossibleTemp(temp) {
				valid = false
				break
			}
		}
		if valid {
			data = append(data[:i], data[i+1:]...)
			return data, parsing.MakeNumber(tempdew[0]), parsing.MakeNumber(tempdew[1])
		}
	}
	return data, nil, nil
}

// saturation returns the vapor pressure term without the C constant, which
// cancels in the humidity ratio.
func saturation(value float64) float64 {
	return math.Exp((17.67 * value) / (243.5 + value))
}

// RelativeHumidity calculates humidity as a 0 to 1 ratio from temperature and
// dewpoint in the given unit.
func RelativeHumidity(temperature, dewpoint float64, unit string) float64 {
	if unit == "F" {
		temperature = (temperature - 32) * 5 / 9
		dewpoint = (dewpoint - 32) * 5 / 9
	}
	return saturation(dewpoint) / saturation(temperature)
}

// getRelativeHumidity prefers the decimal temperatures from remarks over the
// body values.
func getRelativeHumidity(temperature, dewpoint *bulletin.Number, remarksInfo *bulletin.RemarksData, units bulletin.Units) *float64 {
	temp, dew := temperature, dewpoint
	if remarksInfo != nil {
		if remarksInfo.TemperatureDecimal != nil {
			temp = remarksInfo.TemperatureDecimal
		}
		if remarksInfo.DewpointDecimal != nil {
			dew = remarksInfo.DewpointDecimal
		}
	}
	if temp == nil || temp.Value == nil || dew == nil || dew.Value == nil {
		return nil
	}
	rh := RelativeHumidity(*temp.Value, *dew.Value, units.Temperature)
	return &rh
}

// Sanitize repairs a raw METAR, returning the clean report, remarks string,
// body tokens, and the repair log.
func Sanitize(report string) (string, string, []string, *bulletin.Sanitization) {
	sans := &bulletin.Sanitization{}
	clean := sanitize.CleanMETARString(report, sans)
	data, remarkStr := GetRemarks(clean)
	data = parsing.Dedupe(data, false)
	data = sanitize.CleanMETARList(data, sans)
	clean = strings.Join(data, " ")
	if remarkStr != "" {
		clean += " " + remarkStr
	}
	return clean, remarkStr, data, sans
}

// Parse decodes a METAR for the given station. The issued date anchors
// day/hour timestamps; when nil, the current time is used. Returns an
// ErrBadStation-wrapped error for unrecognized idents, and an empty result
// with nil error for an empty report.
func Parse(stationID, report string, issued *time.Time) (*bulletin.ObservationData, *bulletin.Units, *bulletin.Sanitization, error) {
	if err := station.Validate(stationID); err != nil {
		return nil, nil, nil, err
	}
	if report == "" {
		return nil, nil, nil, nil
	}
	region, err := station.RegionFor(stationID[:2])
	if err != nil {
		return nil, nil, nil, err
	}
	data, units, sans := parseWith(report, issued, region)
	return data, units, sans, nil
}

// parseWith runs the shared extractor sequence with the regional variants:
// North American reports favor inHg altimeters, International ones favor hPa
// and the CAVOK visibility/cloud shorthand.
func parseWith(report string, issued *time.Time, region station.Region) (*bulletin.ObservationData, *bulletin.Units, *bulletin.Sanitization) {
	units := bulletin.NorthAmerican()
	if region != station.NorthAmerican {
		units = bulletin.International()
	}
	sanitized, remarksStr, data, sans := Sanitize(report)
	data, stationID, timeStr := parsing.GetStationAndTime(data)
	data, runwayVisibility := GetRunwayVisibility(data)

	cavok := contains(data, "CAVOK")
	var clouds []bulletin.Cloud
	if !cavok || region == station.NorthAmerican {
		data, clouds = parsing.GetClouds(data)
	}
	var windDirection, windSpeed, windGust *bulletin.Number
	var windVariable []bulletin.Number
	data, windDirection, windSpeed, windGust, windVariable = parsing.GetWind(data, &units)
	data, altimeter := GetAltimeter(data, &units, region)
	var visibility *bulletin.Number
	if region != station.NorthAmerican && cavok {
		visibility = parsing.MakeNumber("CAVOK")
		clouds = nil
		data = removeFirst(data, "CAVOK")
	} else {
		data, visibility = parsing.GetVisibility(data, &units)
	}
	var temperature, dewpoint *bulletin.Number
	data, temperature, dewpoint = GetTempAndDew(data)
	flightRules := bulletin.FlightRulesUnder(visibility, bulletin.Ceiling(clouds))
	other, wxCodes := parsing.GetWxCodes(data)
	remarksInfo := remarks.Parse(remarksStr)
	humidity := getRelativeHumidity(temperature, dewpoint, remarksInfo, units)

	obs := &bulletin.ObservationData{
		Raw:                   report,
		Sanitized:             sanitized,
		Station:               stationID,
		Time:                  parsing.MakeTimestamp(timeStr, false, issued),
		WindDirection:         windDirection,
		WindSpeed:             windSpeed,
		WindGust:              windGust,
		WindVariableDirection: windVariable,
		Visibility:            visibility,
		Altimeter:             altimeter,
		Temperature:           temperature,
		Dewpoint:              dewpoint,
		RelativeHumidity:      humidity,
		Clouds:                clouds,
		RunwayVisibility:      runwayVisibility,
		WxCodes:               wxCodes,
		Other:                 other,
		FlightRules:           flightRules,
		Remarks:               remarksStr,
		RemarksInfo:           remarksInfo,
	}
	return obs, &units, sans
}

func contains(data []string, item string) bool {
	for _, d := range data {
		if d == item {
			return true
		}
	}
	return false
}

func removeFirst(data []string, item string) []string {
	for i, d := range data {
		if d == item {
			return append(data[:i], data[i+1:]...)
		}
	}
	return data
}
