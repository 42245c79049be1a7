package entity

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the pair to an orb point, which stores longitude first.
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// InRange reports whether both components are inside the valid WGS84 range.
func (c Coordinates) InRange() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// String renders the pair as "lat, lng", the same shape the resolver accepts as input.
// Whole numbers keep a ".0" so the output always parses back as a decimal pair.
func (c Coordinates) String() string {
	return formatDegrees(c.Latitude) + ", " + formatDegrees(c.Longitude)
}

func formatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
