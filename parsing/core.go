// Package parsing implements the token-consuming field extractors shared by
// the METAR and TAF parsers. Every extractor follows the same contract: it
// receives the remaining report tokens, removes the tokens it recognizes, and
// returns the rest in their original order. Unparseable fields degrade to nil
// rather than returning an error, since most report fields are optional.
package parsing

import (
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
)

// FindFirstInList returns the index of the earliest occurrence of any item
// from the list in the text, or -1 if none are found.
func FindFirstInList(txt string, items []string) int {
	start := len(txt) + 1
	for _, item := range items {
		if idx := strings.Index(txt, item); idx > -1 && idx < start {
			start = idx
		}
	}
	if start > len(txt) {
		return -1
	}
	return start
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// IsTimestamp reports whether the item matches the ddhhmmZ report time format.
func IsTimestamp(item string) bool {
	return len(item) == 7 && item[6] == 'Z' && IsDigits(item[:6])
}

// IsTimerange reports whether the item is a TAF dddd/dddd validity range.
func IsTimerange(item string) bool {
	return len(item) == 9 && item[4] == '/' && IsDigits(item[:4]) && IsDigits(item[5:])
}

// IsPossibleTemp reports whether every character is a digit or 'M' (minus).
func IsPossibleTemp(temp string) bool {
	if temp == "" {
		return false
	}
	for _, ch := range temp {
		if (ch < '0' || ch > '9') && ch != 'M' {
			return false
		}
	}
	return true
}

// GetDigitList removes the marker at fromIndex and every following
// all-digit token, returning the remaining tokens and the digit run.
func GetDigitList(data []string, fromIndex int) ([]string, []string) {
	var ret []string
	data = append(data[:fromIndex:fromIndex], data[fromIndex+1:]...)
	for len(data) > fromIndex && IsDigits(data[fromIndex]) {
		ret = append(ret, data[fromIndex])
		data = append(data[:fromIndex:fromIndex], data[fromIndex+1:]...)
	}
	return data, ret
}

// GetStationAndTime removes and returns the station ident and, when the next
// token matches ddhhmmZ or bare 6 digits, the report time string. Bare digit
// times get a synthesized trailing Z.
func GetStationAndTime(data []string) ([]string, string, string) {
	if len(data) == 0 {
		return data, "", ""
	}
	station := data[0]
	data = data[1:]
	if len(data) == 0 {
		return data, station, ""
	}
	qTime := data[0]
	switch {
	case strings.HasSuffix(qTime, "Z") && IsDigits(qTime[:len(qTime)-1]):
		return data[1:], station, qTime
	case len(qTime) == 6 && IsDigits(qTime):
		return data[1:], station, qTime + "Z"
	}
	return data, station, ""
}

// GetWxCodes splits the remaining tokens into unrecognized "other" tokens and
// decoded weather phenomenon codes.
func GetWxCodes(data []string) ([]string, []bulletin.Code) {
	var other []string
	var codes []bulletin.Code
	for _, item := range data {
		if value, ok := WxCode(item); ok {
			codes = append(codes, bulletin.Code{Repr: item, Value: value})
			continue
		}
		other = append(other, item)
	}
	return other, codes
}

// WxCode expands a weather phenomenon code into a readable string, handling
// +/- intensity prefixes and chained descriptors (-SHRA, VCTS). The second
// return value is false when the token is not a recognized code.
func WxCode(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	var ret strings.Builder
	switch code[0] {
	case '+':
		ret.WriteString("Heavy ")
		code = code[1:]
	case '-':
		ret.WriteString("Light ")
		code = code[1:]
	}
	if len(code) != 2 && len(code) != 4 && len(code) != 6 {
		return "", false
	}
	for ; code != ""; code = code[2:] {
		value, ok := WxTranslations[code[:2]]
		if !ok {
			return "", false
		}
		ret.WriteString(value)
		ret.WriteString(" ")
	}
	return strings.TrimSpace(ret.String()), true
}
