package bulletin

import "strings"

// Sanitization tracks every repair made while cleaning a report, so callers
// can detect reports that needed unusual handling upstream.
type Sanitization struct {
	Removed           []string
	Replaced          map[string]string
	DuplicatesFound   bool
	ExtraSpacesFound  bool
	ExtraSpacesNeeded bool
}

// ErrorsFound reports whether any repair was recorded.
func (s *Sanitization) ErrorsFound() bool {
	return len(s.Removed) > 0 ||
		len(s.Replaced) > 0 ||
		s.DuplicatesFound ||
		s.ExtraSpacesFound ||
		s.ExtraSpacesNeeded
}

// Log records a removed item, or an item replacement when replacement is
// non-empty. Blank items are ignored.
func (s *Sanitization) Log(item, replacement string) {
	item = strings.TrimSpace(item)
	if item == "" {
		return
	}
	if replacement == "" {
		s.Removed = append([]string{item}, s.Removed...)
		return
	}
	replacement = strings.TrimSpace(replacement)
	if item == replacement {
		return
	}
	if s.Replaced == nil {
		s.Replaced = make(map[string]string)
	}
	s.Replaced[item] = replacement
}

// LogRemoval records a removed item.
func (s *Sanitization) LogRemoval(item string) { s.Log(item, "") }

// LogList records the pairwise differences between two equal-length passes
// over the report tokens.
func (s *Sanitization) LogList(before, after []string) {
	if len(before) != len(after) {
		return
	}
	for i, item := range before {
		if item != after[i] {
			s.Log(item, after[i])
		}
	}
}
