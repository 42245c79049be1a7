package service

import (
	"context"

	"alertacordon/internal/domain/entity"
)

// Geocoder resolves a free-text place through an external service.
// A nil result with a nil error means the service had no match.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*entity.Coordinates, error)
}
