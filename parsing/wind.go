package parsing

import (
	"regexp"
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
)

// windUnits in order of real-world frequency. MPH shows up in some automated
// US feeds even though it is not a standard METAR unit.
var windUnits = []struct {
	suffix string
	unit   string
}{
	{"KT", ""},
	{"KTS", ""},
	{"MPS", "m/s"},
	{"KMH", "km/h"},
	{"MPH", "mi/h"},
}

// IsWind reports whether the text is likely a normal wind element.
func IsWind(text string) bool {
	// Ignore wind shear
	if strings.HasPrefix(text, "WS") {
		return false
	}
	// 09010KT, 09010G15KT
	if len(text) > 4 {
		for _, u := range windUnits {
			if strings.HasSuffix(text, u.suffix) {
				return true
			}
		}
	}
	// 09010  09010G15 VRB10
	if len(text) != 5 && (len(text) < 8 || !strings.Contains(text, "G") || strings.Contains(text, "/")) {
		return false
	}
	if len(text) >= 5 && IsDigits(text[:5]) {
		return true
	}
	return strings.HasPrefix(text, "VRB") && len(text) >= 5 && IsDigits(text[3:5])
}

var variableDirectionRe = regexp.MustCompile(`^\d{3}V\d{3}`)

// IsVariableWindDirection reports whether the text looks like 350V040.
func IsVariableWindDirection(text string) bool {
	return len(text) >= 7 && variableDirectionRe.MatchString(text[:7])
}

// separateWind splits a unitless wind element into direction, speed, and gust.
func separateWind(text string) (direction, speed, gust string) {
	if gi := strings.Index(text, "G"); gi > -1 {
		start, end := gi+1, gi+3
		// 16006GP99KT ie gust greater than
		if strings.Contains(text, "GP") {
			end++
		}
		if end > len(text) {
			end = len(text)
		}
		gust = text[start:end]
		text = text[:gi] + text[end:]
	}
	if text != "" {
		// 10G18KT
		if len(text) == 2 {
			speed = text
		} else if len(text) >= 3 {
			direction = text[:3]
			speed = text[3:]
		} else {
			speed = text
		}
	}
	return direction, speed, gust
}

// GetWind consumes the leading wind group plus any trailing bare gust token
// and variable direction range, updating the wind speed unit when the group
// carries an explicit one.
func GetWind(data []string, units *bulletin.Units) ([]string, *bulletin.Number, *bulletin.Number, *bulletin.Number, []bulletin.Number) {
	var direction, speed, gust string
	var variable []bulletin.Number
	if len(data) > 0 && IsWind(data[0]) {
		item := data[0]
		for _, u := range windUnits {
			if strings.HasSuffix(item, u.suffix) {
				item = strings.ReplaceAll(item, u.suffix, "")
				if u.unit != "" {
					units.WindSpeed = u.unit
				}
				break
			}
		}
		direction, speed, gust = separateWind(item)
		data = data[1:]
	}
	// Separated gust
	if len(data) > 0 && len(data[0]) > 1 && len(data[0]) < 4 && data[0][0] == 'G' && IsDigits(data[0][1:]) {
		gust = data[0][1:]
		data = data[1:]
	}
	// Variable wind direction
	if len(data) > 0 && IsVariableWindDirection(data[0]) {
		for _, item := range strings.Split(data[0], "V") {
			if value := MakeNumberWith(item, NumberConfig{Speak: item, Literal: true}); value != nil {
				variable = append(variable, *value)
			}
		}
		data = data[1:]
	}
	directionValue := MakeNumberWith(direction, NumberConfig{Speak: direction, Literal: true})
	speedValue := MakeNumber(strings.Trim(speed, "BV"))
	gustValue := MakeNumber(gust)
	return data, directionValue, speedValue, gustValue, variable
}
