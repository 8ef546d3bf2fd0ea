package user

import (
	"context"

	"github.com/vazqueztomas/barbershop/internal/models"
)

const (
	ErrUsernameTaken      = "username_already_registered"
	ErrEmailTaken         = "email_already_registered"
	ErrInvalidCredentials = "invalid_credentials"
	ErrResetFailed        = "invalid_or_expired_reset_token"
	ErrNotFound           = "user_not_found"
)

// Repository owns account storage and credential handling. Password
// hashes never leave it except inside models.User, which does not
// serialize them.
type Repository interface {
	CreateUser(ctx context.Context, email, username, fullName, password string) (*models.User, error)

	GetByUsername(ctx context.Context, username string) (*models.User, error)

	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Authenticate returns ErrInvalidCredentials for an unknown username
	// and for a wrong password alike.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// CreatePasswordResetToken returns an empty token without error when
	// the email is not registered.
	CreatePasswordResetToken(ctx context.Context, email string) (string, error)

	// ResetPassword consumes the token atomically: a second attempt with
	// the same token fails even under concurrency.
	ResetPassword(ctx context.Context, token, newPassword string) error
}
