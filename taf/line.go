package taf

import (
	"strings"
	"time"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/parsing"
	"github.com/couchcryptid/flightwx/sanitize"
)

// lineFixes repair common mistypes of the period markers so segmentation can
// recognize them.
var lineFixes = []struct{ from, to string }{
	{"TEMP0", "TEMPO"},
	{"TEMP O", "TEMPO"},
	{"TMPO", "TEMPO"},
	{"TE MPO", "TEMPO"},
	{"TEMP ", "TEMPO "},
	{"T EMPO", "TEMPO"},
	{" EMPO", " TEMPO"},
	{"TEMO", "TEMPO"},
	{"BECM G", "BECMG"},
	{"BEMCG", "BECMG"},
	{"BE CMG", "BECMG"},
	{"B ECMG", "BECMG"},
	{" BEC ", " BECMG "},
	{"BCEMG", "BECMG"},
	{"BEMG", "BECMG"},
}

// SanitizeLine fixes mistyped and glued period markers in one forecast line.
func SanitizeLine(txt string, sans *bulletin.Sanitization) string {
	for _, fix := range lineFixes {
		if strings.Contains(txt, fix.from) {
			txt = strings.ReplaceAll(txt, fix.from, fix.to)
			sans.Log(fix.from, fix.to)
		}
	}
	// Fix a missing space following a marker
	for _, item := range []string{"BECMG", "TEMPO"} {
		if strings.Contains(txt, item) && !strings.Contains(txt, item+" ") {
			index := strings.Index(txt, item) + len(item)
			txt = txt[:index] + " " + txt[index:]
			sans.ExtraSpacesNeeded = true
		}
	}
	return txt
}

var periodTypes = map[string]bulletin.PeriodType{
	"FROM":  bulletin.PeriodFrom,
	"BECMG": bulletin.PeriodBecoming,
	"TEMPO": bulletin.PeriodTemporary,
	"INTER": bulletin.PeriodIntermit,
}

// canonicalLineLength is the element count of a full TAF line; the ambiguous
// two-bare-times form (1200 1306) is only accepted at exactly this length.
const canonicalLineLength = 8

// getTypeAndTimes consumes the leading period marker and validity time group,
// returning the type and raw start/end/transition time strings. BECMG
// reinterprets the consumed start as a transition point.
func getTypeAndTimes(data []string) ([]string, bulletin.PeriodType, string, string, string) {
	periodType := bulletin.PeriodFrom
	var startTime, endTime, transition string
	if len(data) > 0 {
		if t, ok := periodTypes[data[0]]; ok {
			periodType = t
			data = data[1:]
		} else if len(data[0]) == 6 && strings.HasPrefix(data[0], "PROB") {
			data = data[1:]
		}
	}
	if len(data) > 0 {
		item := data[0]
		switch {
		// 1200/1306
		case isNormalTime(item):
			startTime, endTime = item[:4], item[5:]
			data = data[1:]
		// 1200 1306
		case len(data) == canonicalLineLength && len(item) == 4 && len(data[1]) == 4 &&
			parsing.IsDigits(item) && parsing.IsDigits(data[1]):
			startTime, endTime = item, data[1]
			data = data[2:]
		// 120000
		case len(item) == 6 && parsing.IsDigits(item) && strings.HasSuffix(item, "00"):
			startTime = item[:4]
			data = data[1:]
		// FM120000
		case len(item) > 7 && strings.HasPrefix(item, "FM"):
			periodType = bulletin.PeriodFrom
			body := item[2:]
			if slash := strings.Index(body, "/"); slash > -1 &&
				parsing.IsDigits(body[:slash]) && parsing.IsDigits(body[slash+1:]) {
				startTime, endTime = body[:slash], body[slash+1:]
				data = data[1:]
			} else if len(body) >= 6 && parsing.IsDigits(body[:6]) {
				startTime = body[:4]
				data = data[1:]
			}
			// TL120600
			if len(data) > 0 && len(data[0]) > 7 && strings.HasPrefix(data[0], "TL") &&
				parsing.IsDigits(data[0][2:8]) {
				endTime = data[0][2:6]
				data = data[1:]
			}
		case periodType == bulletin.PeriodBecoming && len(item) == 5:
			// 1200/
			if item[4] == '/' && parsing.IsDigits(item[:4]) {
				startTime = item[:4]
				data = data[1:]
			} else if item[0] == '/' && parsing.IsDigits(item[1:]) {
				// /1200
				endTime = item[1:]
				data = data[1:]
			}
		}
	}
	if periodType == bulletin.PeriodBecoming {
		transition, startTime, endTime = startTime, endTime, ""
	}
	return data, periodType, startTime, endTime, transition
}

// getWindShear removes wind shear groups (WS020/07040KT), returning the
// earliest one with the unit stripped.
func getWindShear(data []string) ([]string, string) {
	shear := ""
	remaining := data[:0:0]
	for _, item := range data {
		if len(item) > 6 && strings.HasPrefix(item, "WS") && item[5] == '/' {
			if shear == "" {
				shear = strings.ReplaceAll(item, "KT", "")
			}
			continue
		}
		remaining = append(remaining, item)
	}
	return remaining, shear
}

// getAltIceTurb removes the QNH altimeter group and the 6-prefixed icing and
// 5-prefixed turbulence digit groups.
func getAltIceTurb(data []string) ([]string, *bulletin.Number, []string, []string) {
	var altimeter *bulletin.Number
	var icing, turbulence []string
	remaining := data[:0:0]
	for _, item := range data {
		switch {
		case len(item) > 6 && strings.HasPrefix(item, "QNH") && parsing.IsDigits(item[3:7]):
			alt := item[3:7]
			if alt[0] == '2' || alt[0] == '3' {
				alt = alt[:2] + "." + alt[2:]
			}
			altimeter = parsing.MakeNumberWith(alt, parsing.NumberConfig{Literal: true})
		case parsing.IsDigits(item) && strings.HasPrefix(item, "6"):
			icing = append(icing, item)
		case parsing.IsDigits(item) && strings.HasPrefix(item, "5"):
			turbulence = append(turbulence, item)
		default:
			remaining = append(remaining, item)
		}
	}
	return remaining, altimeter, icing, turbulence
}

// isPossibleTimeSlash reports whether the item is a period start or end with
// a missing side, e.g. 1200/ or /1200.
func isPossibleTimeSlash(item string) bool {
	if len(item) != 5 {
		return false
	}
	return (item[4] == '/' && parsing.IsDigits(item[:4])) ||
		(item[0] == '/' && parsing.IsDigits(item[1:]))
}

// parseLines runs each split period through the line parser, folding a
// standalone PROB## marker into the following line.
func parseLines(lines []string, units *bulletin.Units, sans *bulletin.Sanitization, issued *time.Time) []bulletin.ForecastPeriod {
	var parsed []bulletin.ForecastPeriod
	prob := ""
	for _, rawLine := range lines {
		rawLine = strings.TrimSpace(rawLine)
		line := SanitizeLine(rawLine, sans)
		if strings.HasPrefix(line, "PROB") {
			if len(line) == 6 {
				// Standalone probability applies to the next line
				prob = line
				line = ""
			} else if len(line) > 6 {
				prob = line[:6]
				line = strings.TrimSpace(line[6:])
			}
		}
		if line == "" {
			continue
		}
		period := parseLine(line, units, sans, issued)
		if !strings.Contains(prob, " ") && len(prob) == 6 {
			period.Probability = parsing.MakeNumber(prob[4:])
		}
		period.Raw = rawLine
		if prob != "" {
			period.Sanitized = prob + " " + period.Sanitized
		}
		prob = ""
		parsed = append(parsed, period)
	}
	return parsed
}

// parseLine decodes one forecast period's tokens.
func parseLine(line string, units *bulletin.Units, sans *bulletin.Sanitization, issued *time.Time) bulletin.ForecastPeriod {
	data := parsing.Dedupe(strings.Fields(line), false)
	// Preserve a useful slash in a half-open validity time that the token
	// cleaner would strip.
	oldTime := ""
	if len(data) > 1 && isPossibleTimeSlash(data[1]) {
		oldTime = data[1]
	}
	data = sanitize.CleanTAFList(data, sans)
	if oldTime != "" && len(data) > 1 && data[1] == strings.Trim(oldTime, "/") {
		data[1] = oldTime
	}
	sanitized := strings.Join(data, " ")
	data, periodType, startTime, endTime, transition := getTypeAndTimes(data)
	data, windShear := getWindShear(data)
	var windDirection, windSpeed, windGust *bulletin.Number
	var windVariable []bulletin.Number
	data, windDirection, windSpeed, windGust, windVariable = parsing.GetWind(data, units)
	var visibility *bulletin.Number
	var clouds []bulletin.Cloud
	if idx := indexOf(data, "CAVOK"); idx > -1 {
		visibility = parsing.MakeNumber("CAVOK")
		data = append(data[:idx], data[idx+1:]...)
	} else {
		data, visibility = parsing.GetVisibility(data, units)
		data, clouds = parsing.GetClouds(data)
	}
	other, altimeter, icing, turbulence := getAltIceTurb(data)
	return bulletin.ForecastPeriod{
		Raw:                   line,
		Sanitized:             sanitized,
		Type:                  periodType,
		StartTime:             parsing.MakeTimestamp(startTime, false, issued),
		EndTime:               parsing.MakeTimestamp(endTime, false, issued),
		TransitionStart:       parsing.MakeTimestamp(transition, false, issued),
		WindDirection:         windDirection,
		WindSpeed:             windSpeed,
		WindGust:              windGust,
		WindVariableDirection: windVariable,
		WindShear:             windShear,
		Visibility:            visibility,
		Altimeter:             altimeter,
		Clouds:                clouds,
		Icing:                 icing,
		Turbulence:            turbulence,
		Other:                 other,
	}
}

func indexOf(data []string, item string) int {
	for i, d := range data {
		if d == item {
			return i
		}
	}
	return -1
}
