// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Report is a single anonymous incident submitted through the public form.
type Report struct {
	ID             int64     `json:"id"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	LocationSource string    `json:"locationSource"` // Resolver strategy that produced the coordinates.
	IsAnonymous    bool      `json:"isAnonymous"`
	Hidden         bool      `json:"-"` // Set by moderation; hidden reports are never listed.
	CreatedAt      time.Time `json:"createdAt"`
}

// Coordinates returns the stored position of the report.
func (r *Report) Coordinates() Coordinates {
	return Coordinates{Latitude: r.Latitude, Longitude: r.Longitude}
}
