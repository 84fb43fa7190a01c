package ports

import (
	"context"
	"transit-delay-service/internal/domain"
)

// Port: a boundary for the credential store backing signup and login.
type UserRepository interface {
	// CreateUser inserts a new account. Fails if the email is taken.
	CreateUser(ctx context.Context, user domain.User) error
	// FindUser returns the stored account, or (nil, nil) when unknown.
	FindUser(ctx context.Context, email string) (*domain.User, error)
}
