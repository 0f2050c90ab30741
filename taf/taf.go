// Package taf decodes TAF terminal aerodrome forecasts: the report is split
// into validity periods, each period is decoded independently, and missing
// period boundaries are inferred from the surrounding timeline.
package taf

import (
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/parsing"
	"github.com/couchcryptid/flightwx/remarks"
	"github.com/couchcryptid/flightwx/sanitize"
	"github.com/couchcryptid/flightwx/station"
)

// newLineMarkers start a new forecast period when they appear as a whole
// token; newLinePrefixes start one when a token begins with them.
var (
	newLineMarkers  = []string{"INTER", "BECMG", "TEMPO"}
	newLinePrefixes = []string{"FM", "PROB"}
)

// remarkSignifiers mark where the forecast body ends and remarks begin.
var remarkSignifiers = []string{
	"RMK ", "AUTOMATED ", "COR ", "AMD ", "LAST ", "FCST ",
	"CANCEL ", "CHECK ", "WND ", "MOD ", " BY", " QFE", " QFF",
}

// GetTAFRemarks returns the report body and remarks separated.
func GetTAFRemarks(report string) (string, string) {
	index := findFirstSignifier(report)
	if index == -1 {
		return report, ""
	}
	return strings.TrimSpace(report[:index]), report[index:]
}

func findFirstSignifier(report string) int {
	first := -1
	for _, item := range remarkSignifiers {
		if index := strings.Index(report, item); index > -1 && (first == -1 || index < first) {
			first = index
		}
	}
	return first
}

// FixReportHeader reorders a mangled header so the report starts
// TAF [AMD|COR] station.
func FixReportHeader(report string) string {
	split := strings.Fields(report)
	var header, body []string
	limit := len(split)
	if limit > 6 {
		limit = 6
	}
	for i, item := range split {
		if i < limit && (item == "TAF" || item == "AMD" || item == "COR") {
			header = append(header, item)
		} else {
			body = append(body, item)
		}
	}
	return strings.Join(append(header, body...), " ")
}

// isNormalTime reports whether the item is a full dddd/dddd validity range.
func isNormalTime(item string) bool {
	return parsing.IsTimerange(item)
}

func startsNewLine(item string) bool {
	for _, marker := range newLineMarkers {
		if item == marker {
			return true
		}
	}
	for _, prefix := range newLinePrefixes {
		if strings.HasPrefix(item, prefix) {
			return true
		}
	}
	return false
}

// SplitTAF splits the report body into one string per forecast period.
func SplitTAF(txt string) []string {
	var lines []string
	split := strings.Fields(txt)
	var current []string
	for _, item := range split {
		newLine := startsNewLine(item)
		// A validity range not preceded by a marker implies a new FROM period
		if !newLine && isNormalTime(item) && len(current) > 0 && !startsNewLine(current[len(current)-1]) {
			newLine = true
		}
		// PROB## binds to the marker that follows it
		if newLine && len(current) > 0 && strings.HasPrefix(current[len(current)-1], "PROB") {
			newLine = false
		}
		if newLine && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
		}
		current = append(current, item)
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// GetTempMinAndMax pulls the TX max and TN min temperature groups, repairing
// mistyped prefixes by comparing values when both land in the min slot.
func GetTempMinAndMax(data []string) ([]string, string, string) {
	tempMax, tempMin := "", ""
	for i := len(data) - 1; i >= 0; i-- {
		item := data[i]
		if len(item) <= 6 || item[0] != 'T' || !strings.Contains(item, "/") {
			continue
		}
		switch {
		// TX12/1316Z
		case item[1] == 'X':
			tempMax = item
		// TXM03/1404Z
		case item[1] == 'N':
			tempMin = item
		// TM03/1404Z or T12/1316Z, usually mistyped
		case item[1] == 'M' || isDigit(item[1]):
			if tempMin != "" {
				if tempValue(tempMin[2:]) > tempValue(item[1:]) {
					tempMax, tempMin = "TX"+tempMin[2:], "TN"+item[1:]
				} else {
					tempMax = "TX" + item[1:]
				}
			} else {
				tempMin = "TN" + item[1:]
			}
		default:
			continue
		}
		data = append(data[:i], data[i+1:]...)
	}
	return data, tempMax, tempMin
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// tempValue reads the signed integer before the slash of a TX/TN group body.
func tempValue(body string) int {
	slash := strings.Index(body, "/")
	if slash == -1 {
		slash = len(body)
	}
	value, err := strconv.Atoi(strings.ReplaceAll(body[:slash], "M", "-"))
	if err != nil {
		return 0
	}
	return value
}

// GetOceaniaTempAndAlt removes the T and Q digit lists used by Oceania
// stations, returning the temperature and altimeter groups.
func GetOceaniaTempAndAlt(data []string) ([]string, []string, []string) {
	var temps, alts []string
	if idx := indexOf(data, "T"); idx > -1 {
		data, temps = parsing.GetDigitList(data, idx)
	}
	if idx := indexOf(data, "Q"); idx > -1 {
		data, alts = parsing.GetDigitList(data, idx)
	}
	return data, temps, alts
}

// nextStartTime finds the nearest usable period start, preferring a BECMG
// transition point over the period's own start.
func nextStartTime(lines []bulletin.ForecastPeriod) *bulletin.Timestamp {
	for _, line := range lines {
		if line.IsOverlay() {
			continue
		}
		if line.TransitionStart != nil {
			return line.TransitionStart
		}
		if line.StartTime != nil {
			return line.StartTime
		}
	}
	return nil
}

func nextEndTime(lines []bulletin.ForecastPeriod) *bulletin.Timestamp {
	for _, line := range lines {
		if line.IsOverlay() {
			continue
		}
		if line.EndTime != nil {
			return line.EndTime
		}
	}
	return nil
}

// FindMissingTAFTimes fills unset period boundaries. The first period adopts
// the report start, a missing start adopts the nearest preceding base
// period's end, a missing end adopts the nearest following base period's
// start, and the last base period's end is forced to the report end. Overlay
// periods are never filled and never consulted.
func FindMissingTAFTimes(lines []bulletin.ForecastPeriod, start, end *bulletin.Timestamp) []bulletin.ForecastPeriod {
	if len(lines) == 0 {
		return lines
	}
	if lines[0].StartTime == nil {
		lines[0].StartTime = start
	}
	lastBase := 0
	for i := range lines {
		if lines[i].IsOverlay() {
			continue
		}
		lastBase = i
		if lines[i].StartTime == nil {
			lines[i].StartTime = nextEndTimeBefore(lines, i)
		}
		if lines[i].EndTime == nil {
			lines[i].EndTime = nextStartTime(lines[i+1:])
		}
	}
	lines[lastBase].EndTime = end
	// In case the report ends immediately after the first period
	if lines[0].EndTime == nil {
		lines[0].EndTime = end
	}
	return lines
}

func nextEndTimeBefore(lines []bulletin.ForecastPeriod, i int) *bulletin.Timestamp {
	for j := i - 1; j >= 0; j-- {
		if lines[j].IsOverlay() {
			continue
		}
		if lines[j].EndTime != nil {
			return lines[j].EndTime
		}
	}
	return nil
}

// GetTAFFlightRules assigns flight rules to each period, inheriting missing
// visibility and cloud layers from the nearest preceding base period.
func GetTAFFlightRules(lines []bulletin.ForecastPeriod) []bulletin.ForecastPeriod {
	for i := range lines {
		tempVis := lines[i].Visibility
		tempCloud := lines[i].Clouds
		isClear := false
		for j := i; j >= 0; j-- {
			if lines[j].IsOverlay() {
				continue
			}
			if tempVis == nil {
				tempVis = lines[j].Visibility
			}
			if contains(lines[j].Other, "SKC") || contains(lines[j].Other, "CLR") ||
				(tempVis != nil && tempVis.Repr == "CAVOK") {
				isClear = true
			} else if len(tempCloud) == 0 {
				tempCloud = lines[j].Clouds
			}
			if tempVis != nil && len(tempCloud) > 0 {
				break
			}
		}
		if isClear {
			tempCloud = nil
		}
		lines[i].FlightRules = bulletin.FlightRulesUnder(tempVis, bulletin.Ceiling(tempCloud))
	}
	return lines
}

func contains(data []string, item string) bool { return indexOf(data, item) > -1 }

// Sanitize returns the repaired report string and the repair log.
func Sanitize(report string) (string, *bulletin.Sanitization) {
	sans := &bulletin.Sanitization{}
	return sanitize.CleanTAFString(report, sans), sans
}

// Parse decodes a TAF report for the given station. When issued is non-nil,
// period times resolve against it instead of the current clock.
func Parse(stationID, report string, issued *time.Time) (*bulletin.ForecastData, *bulletin.Units, *bulletin.Sanitization, error) {
	if err := station.Validate(stationID); err != nil {
		return nil, nil, nil, err
	}
	data := &bulletin.ForecastData{Raw: report}
	report = FixReportHeader(report)
header:
	for {
		switch {
		case strings.HasPrefix(report, "TAF "):
			report = report[4:]
		case strings.HasPrefix(report, "AMD "):
			data.IsAmended = true
			report = report[4:]
		case strings.HasPrefix(report, "COR "):
			data.IsCorrection = true
			report = report[4:]
		default:
			break header
		}
	}
	sanitized, sans := Sanitize(report)
	prefix := sanitized
	if len(prefix) > 20 {
		prefix = prefix[:20]
	}
	_, newStation, timeStr := parsing.GetStationAndTime(strings.Fields(prefix))
	if newStation != "" {
		stationID = newStation
		sanitized = strings.Replace(sanitized, newStation, "", 1)
	}
	if timeStr != "" {
		sanitized = strings.Replace(sanitized, timeStr, "", 1)
	}
	sanitized = strings.TrimSpace(sanitized)
	data.Station = stationID
	data.Time = parsing.MakeTimestamp(timeStr, false, issued)

	region, err := station.RegionFor(stationID[:2])
	if err != nil {
		return nil, nil, nil, err
	}
	units := bulletin.International()
	if region == station.NorthAmerican {
		units = bulletin.NorthAmerican()
	}

	body, remarksText := GetTAFRemarks(sanitized)
	data.Remarks = remarksText
	data.RemarksInfo = remarks.Parse(remarksText)
	if strings.HasPrefix(remarksText, "AMD") {
		data.IsAmended = true
	}

	parsed := parseLines(SplitTAF(body), &units, sans, issued)
	if len(parsed) > 0 {
		// Temperature groups normally ride the last line but can land on
		// the first
		last := len(parsed) - 1
		parsed[last].Other, data.MaxTemp, data.MinTemp = GetTempMinAndMax(parsed[last].Other)
		if data.MaxTemp == "" && data.MinTemp == "" {
			parsed[0].Other, data.MaxTemp, data.MinTemp = GetTempMinAndMax(parsed[0].Other)
		}
		data.StartTime = parsed[0].StartTime
		data.EndTime = parsed[0].EndTime
		parsed[0].EndTime = nil
		parsed = FindMissingTAFTimes(parsed, data.StartTime, data.EndTime)
		parsed = GetTAFFlightRules(parsed)
		if stationID[0] == 'A' {
			parsed[last].Other, data.Temps, data.Alts = GetOceaniaTempAndAlt(parsed[last].Other)
		}
	}
	for i := range parsed {
		parsed[i].Other, parsed[i].WxCodes = parsing.GetWxCodes(parsed[i].Other)
	}
	data.Forecast = parsed

	pieces := []string{stationID}
	if timeStr != "" {
		pieces = append(pieces, timeStr)
	}
	pieces = append(pieces, sanitized)
	data.Sanitized = strings.Join(pieces, " ")
	return data, &units, sans, nil
}
