package sanitize

import (
	"regexp"
	"strings"
)

// Characters and fragments that never belong in a wind group.
var windRemovals = []string{"/", "-", "{", "}", "(N)", "(E)", "(S)", "(W)"}

// windReplacements fix OCR confusions, mistyped gust markers, and mangled
// unit suffixes. Order matters: KTKT must collapse before TK is rewritten.
var windReplacements = []replacement{
	{"O", "0"},
	{"|", "1"},
	{"MPSM", "MPS"}, // conflict with SM
	{"FG", "G"},
	{"GG", "G"},
	{"GT", "G"},
	{"GS", "G"},
	{"SQ", "G"},
	{"CT", "KT"},
	{"JT", "KT"},
	{"SM", "KT"},
	{"KTKT", "KT"},
	{"TK", "KT"},
	{"LKT", "KT"},
	{"ZKT", "KT"},
	{"KKT", "KT"},
	{"JKT", "KT"},
	{"KLT", "KT"},
	{"TKT", "KT"},
	{"GKT", "KT"},
	{"PKT", "KT"},
	{"XKT", "KT"},
	{"VRBL", "VRB"},
}

// Garbled VRB prefixes that survive the character fixes above.
var windVRBPrefixes = []string{"WBB"}

var ktPattern = regexp.MustCompile(`^[0-9A-Z_]*\d{2}K[^T]$`)

// SanitizeWind fixes rare wind issues that are too broad for the token rule
// list: transposed characters, leading garbage before a VRB marker, and a
// truncated or reversed KT suffix.
func SanitizeWind(text string) string {
	for _, rem := range windRemovals {
		text = strings.ReplaceAll(text, rem, "")
	}
	for _, r := range windReplacements {
		text = strings.ReplaceAll(text, r.from, r.to)
	}
	if len(text) > 4 && !strings.HasPrefix(text, "VRB") && !isAllDigits(text[:3]) {
		if vrbLetterCount(text[:4]) > 1 {
			// Majority of cases where at least two valid letters are found
			for i, ch := range text {
				if ch >= '0' && ch <= '9' {
					text = "VRB" + text[i:]
					break
				}
			}
		} else {
			for _, key := range windVRBPrefixes {
				if strings.HasPrefix(text, key) {
					zero := ""
					if strings.HasSuffix(key, "0") {
						zero = "0"
					}
					text = strings.Replace(text, key, "VRB"+zero, 1)
					break
				}
			}
		}
	}
	// Remaining string would be fixed at this point if valid, so only the
	// K(T) suffix still needs repair.
	if ktPattern.MatchString(text) {
		text = text[:len(text)-1] + "T"
	}
	if strings.HasSuffix(text, "K") {
		text += "T"
	}
	return text
}

// vrbLetterCount counts distinct V/R/B letters present in s.
func vrbLetterCount(s string) int {
	count := 0
	for _, ch := range "VRB" {
		if strings.ContainsRune(s, ch) {
			count++
		}
	}
	return count
}
