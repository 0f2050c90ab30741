package sanitize

import (
	"strings"

	"github.com/couchcryptid/flightwx/bulletin"
)

// separateCloudLayers inserts a missing space wherever a cloud layer code is
// glued to a preceding non-space character and followed by three digits or
// only slashes. Ex: TSFEW004SCT012FEW///CBBKN080. The loop is bounded by the
// occurrence count so pathological input cannot insert forever.
func separateCloudLayers(text string) string {
	for _, cloud := range bulletin.CloudTypes {
		if !strings.Contains(text, cloud) || strings.Contains(text, " "+cloud) {
			continue
		}
		start, counter := 0, 0
		for strings.Count(text, cloud) != strings.Count(text, " "+cloud) {
			rel := strings.Index(text[start:], cloud)
			if rel < 0 {
				break
			}
			cloudIndex := start + rel
			if len(text[cloudIndex:]) >= 3 {
				end := cloudIndex + len(cloud) + 3
				if end > len(text) {
					end = len(text)
				}
				target := text[cloudIndex+len(cloud) : end]
				if isAllDigits(target) || strings.Trim(target, "/") == "" {
					text = text[:cloudIndex] + " " + text[cloudIndex:]
				}
			}
			start = cloudIndex + len(cloud) + 1
			// Prevent infinite loops
			if counter > strings.Count(text, cloud) {
				break
			}
			counter++
		}
	}
	return text
}

func isAllDigits(s string) bool {
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
