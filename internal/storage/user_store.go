package storage

import (
	"context"
	"errors"

	usermodel "github.com/Varun5711/promokit/internal/models/user"
)

// ErrDuplicateEmail is returned when an account with the given email already
// exists. The store is the source of truth for uniqueness: a constraint
// violation at insert time maps to this error, so concurrent signups with the
// same email cannot both succeed.
var ErrDuplicateEmail = errors.New("email already registered")

type UserStore interface {
	// CreateUser inserts a new account and returns it with its assigned id.
	CreateUser(ctx context.Context, email, name, passwordHash string) (*usermodel.User, error)

	// GetUserByEmail returns (nil, nil) when no account matches.
	GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error)
}
