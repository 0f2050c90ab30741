// Package station resolves an ICAO ident prefix to its reporting region,
// which governs a report's default units and time-format dialect. Hosts with
// a real station database can satisfy the Lookup interface instead.
package station

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadStation marks an ident whose prefix does not map to a known
// reporting region. It is the only error the decoders raise before parsing.
var ErrBadStation = errors.New("bad station ident")

// Region is a reporting format dialect.
type Region int

const (
	// NorthAmerican reports default to statute miles and inches of mercury.
	NorthAmerican Region = iota
	// International reports default to meters and hectopascals.
	International
)

func (r Region) String() string {
	if r == NorthAmerican {
		return "NA"
	}
	return "IN"
}

// First-letter region prefixes.
var (
	naRegions = "CKPT"
	inRegions = "ABDEFGHLNORSUVWYZ"
)

// The Central American region is split, so M-prefixed idents resolve on the
// first two letters.
var (
	mNARegions = []string{"MB", "MM", "MT", "MY"}
	mINRegions = []string{"MD", "MG", "MH", "MK", "MN", "MP", "MR", "MS", "MU", "MW", "MZ"}
)

// RegionFor returns the reporting region for a station ident.
func RegionFor(ident string) (Region, error) {
	if ident == "" {
		return 0, fmt.Errorf("%w: empty ident", ErrBadStation)
	}
	if strings.ContainsAny(ident[:1], naRegions) {
		return NorthAmerican, nil
	}
	if strings.ContainsAny(ident[:1], inRegions) {
		return International, nil
	}
	if len(ident) >= 2 {
		prefix := ident[:2]
		for _, p := range mNARegions {
			if prefix == p {
				return NorthAmerican, nil
			}
		}
		for _, p := range mINRegions {
			if prefix == p {
				return International, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q does not start with a recognized character set", ErrBadStation, ident)
}

// UsesNAFormat reports whether the ident belongs to the North American
// reporting region.
func UsesNAFormat(ident string) (bool, error) {
	region, err := RegionFor(ident)
	return region == NorthAmerican, err
}

// Validate checks a station ident's shape and regional prefix, returning an
// ErrBadStation-wrapped error if either fails.
func Validate(ident string) error {
	ident = strings.TrimSpace(ident)
	if len(ident) != 4 {
		return fmt.Errorf("%w: ICAO idents must be four characters long", ErrBadStation)
	}
	_, err := RegionFor(ident)
	return err
}

// Lookup resolves a station ident to its reporting region. The prefix-table
// implementation above is the default; hosts may inject one backed by a real
// station database.
type Lookup interface {
	Region(ident string) (Region, error)
}

// PrefixLookup is the table-driven Lookup used when the host supplies none.
type PrefixLookup struct{}

// Region implements Lookup via the regional prefix tables.
func (PrefixLookup) Region(ident string) (Region, error) { return RegionFor(ident) }
