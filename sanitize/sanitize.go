// Package sanitize repairs malformed report text before structured
// extraction. Repairs happen in two stages: whole-string replacements while
// the report is still one line, then per-token rules after splitting on
// whitespace. Every change is recorded in a bulletin.Sanitization log.
//
// The token pass visits the report right to left so an edit at index i never
// invalidates an index that has not been visited yet. Each token change is
// attributed to exactly one rule, and tokens that survive are never reordered
// relative to each other.
package sanitize

import (
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
	"github.com/couchcryptid/flightwx/parsing"
)

// replacement is one ordered literal-substring repair applied to the whole
// report string. Order matters: earlier entries may create or destroy the
// text later entries match.
type replacement struct {
	from, to string
}

// rule applies one token repair. Exactly one action field is set.
type rule struct {
	// combine merges the token into its left neighbor when true.
	combine func(first, second string) bool
	// split breaks the token in two at the returned index; 0 means no split.
	split func(item string) int
	// remove drops the token when true.
	remove func(item string) bool
	// replace substitutes the token when handled.
	replace func(item string) (string, bool)
}

// cleanString uppercases, collapses whitespace, applies the ordered
// replacement table, and inserts missing spaces before glued cloud layers.
// The leading 4-character station ident is never altered. Input under 4
// characters passes through unchanged.
func cleanString(text string, repl []replacement, sans *bulletin.Sanitization) string {
	text = strings.TrimRight(strings.ToUpper(strings.TrimSpace(text)), "=")
	if len(text) < 4 {
		return text
	}
	text = strings.Join(strings.Fields(text), " ")
	stid, text := text[:4], text[4:]
	for _, r := range repl {
		if strings.Contains(text, r.from) {
			text = strings.ReplaceAll(text, r.from, r.to)
			sans.Log(r.from, r.to)
		}
	}
	separated := separateCloudLayers(text)
	if text != separated {
		sans.ExtraSpacesNeeded = true
	}
	return stid + separated
}

// cleanList runs the rule list right to left over the tokens, then applies
// the wind repair pass, strips stray trailing punctuation, and collapses
// adjacent duplicates.
func cleanList(data []string, rules []rule, sans *bulletin.Sanitization) []string {
	for i := len(data) - 1; i >= 0; i-- {
		item := data[i]
		for _, r := range rules {
			switch {
			case r.combine != nil:
				if i > 0 && r.combine(data[i-1], item) {
					data[i-1] += item
					data = append(data[:i], data[i+1:]...)
					sans.ExtraSpacesFound = true
				}
			case r.split != nil:
				if idx := r.split(item); idx > 0 {
					data = append(data, "")
					copy(data[i+2:], data[i+1:])
					data[i] = item[:idx]
					data[i+1] = item[idx:]
					sans.ExtraSpacesNeeded = true
				}
			case r.remove != nil:
				if r.remove(item) {
					sans.LogRemoval(item)
					data = append(data[:i], data[i+1:]...)
				}
			case r.replace != nil:
				if cleaned, ok := r.replace(item); ok && cleaned != item {
					data[i] = cleaned
					sans.Log(item, cleaned)
					item = cleaned
					continue
				}
			}
			// Any structural edit consumed this index.
			if i >= len(data) || data[i] != item {
				break
			}
		}
	}

	// Wind repairs work better left to right with the station out of scope.
	for i := 1; i < len(data); i++ {
		item := data[i]
		if parsing.IsVariableWindDirection(item) {
			if replaced := item[:7]; replaced != item {
				data[i] = replaced
				sans.Log(item, replaced)
			}
			continue
		}
		possible := SanitizeWind(item)
		if parsing.IsWind(possible) {
			if item != possible {
				sans.Log(item, possible)
			}
			data[i] = possible
		}
	}

	// Strip extra characters before dedupe
	stripped := make([]string, len(data))
	for i, item := range data {
		stripped[i] = strings.Trim(item, "./\\")
	}
	sans.LogList(data, stripped)
	deduped := parsing.Dedupe(stripped, true)
	if len(deduped) != len(stripped) {
		sans.DuplicatesFound = true
	}
	return deduped
}
