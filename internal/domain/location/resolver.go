// Package location turns free-text places typed into the report form into
// coordinates. Resolution never fails: anything it cannot place lands on the
// neighbourhood default.
package location

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"alertacordon/internal/domain/entity"

	"golang.org/x/text/unicode/norm"
)

// Source names the strategy that produced a set of coordinates.
type Source string

const (
	SourceDefault     Source = "default"
	SourceCoordinates Source = "coordinates"
	SourceExact       Source = "exact"
	SourceSubstring   Source = "substring"
	SourceGeocoder    Source = "geocoder"
)

// DefaultCoordinates is the Barrio Cordón centroid used when nothing matches.
//
//nolint:gochecknoglobals
var DefaultCoordinates = entity.Coordinates{Latitude: -34.9075, Longitude: -56.1668}

// Separators may include non-breaking and other Unicode spaces, which RE2 leaves out of \s.
var coordinatePattern = regexp.MustCompile(`(-?\d{1,3}\.\d+)[\s\p{Zs}]*,[\s\p{Zs}]*(-?\d{1,3}\.\d+)`)

// KnownLocation is one named spot in the lookup table.
type KnownLocation struct {
	Name        string
	Coordinates entity.Coordinates
}

// Resolver resolves locations against a fixed table. It is safe for concurrent use.
type Resolver struct {
	keys  []string // scan order for substring matching
	table map[string]entity.Coordinates
}

// NewResolver builds a resolver over the built-in table followed by extra.
// A repeated name keeps its first position but takes the last coordinates.
func NewResolver(extra ...KnownLocation) *Resolver {
	r := &Resolver{table: make(map[string]entity.Coordinates)}
	for _, loc := range BuiltinLocations() {
		r.add(loc)
	}
	for _, loc := range extra {
		r.add(loc)
	}

	return r
}

func (r *Resolver) add(loc KnownLocation) {
	key := Normalize(loc.Name)
	if key == "" {
		return
	}
	if _, exists := r.table[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.table[key] = loc.Coordinates
}

// Resolve returns coordinates for location, falling back to DefaultCoordinates.
func (r *Resolver) Resolve(location string) entity.Coordinates {
	coords, _ := r.Lookup(location)

	return coords
}

// Lookup is Resolve plus the strategy that matched. Order: blank input,
// embedded "lat, lng" pair, exact table key, first table key contained in the
// input (declaration order), default.
func (r *Resolver) Lookup(location string) (entity.Coordinates, Source) {
	if strings.TrimSpace(location) == "" {
		return DefaultCoordinates, SourceDefault
	}

	if coords, ok := parseCoordinates(location); ok {
		return coords, SourceCoordinates
	}

	normalized := Normalize(location)
	if coords, ok := r.table[normalized]; ok {
		return coords, SourceExact
	}

	for _, key := range r.keys {
		if strings.Contains(normalized, key) {
			return r.table[key], SourceSubstring
		}
	}

	return DefaultCoordinates, SourceDefault
}

// Len returns the number of distinct table entries.
func (r *Resolver) Len() int {
	return len(r.keys)
}

// Normalize trims, lower-cases and NFC-composes s so accented input typed on
// different keyboards compares equal.
func Normalize(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

// parseCoordinates finds the first "lat, lng" pair in s. Values are not
// range-checked.
func parseCoordinates(s string) (entity.Coordinates, bool) {
	m := coordinatePattern.FindStringSubmatch(s)
	if m == nil {
		return entity.Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil || !isFinite(lat) {
		return entity.Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil || !isFinite(lng) {
		return entity.Coordinates{}, false
	}

	return entity.Coordinates{Latitude: lat, Longitude: lng}, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
