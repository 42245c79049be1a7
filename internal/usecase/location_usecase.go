package usecase

import (
	"context"

	"alertacordon/internal/domain/entity"
	"alertacordon/internal/domain/location"
)

// ResolvedLocation is a resolution result with the strategy that produced it.
type ResolvedLocation struct {
	Coordinates entity.Coordinates `json:"coordinates"`
	Source      location.Source    `json:"source"`
}

// LocationUsecase resolves free-text locations. It never fails.
type LocationUsecase interface {
	ResolveLocation(ctx context.Context, query string) *ResolvedLocation
}
