package usecase

import (
	"context"
	"time"
)

// AdminSession is an issued moderator token.
type AdminSession struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AdminUsecase authenticates moderators.
type AdminUsecase interface {
	Login(ctx context.Context, username, password string) (*AdminSession, error)
}
