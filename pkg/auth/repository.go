package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserNameTaken      = errors.New("user name is already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed input field.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations must enforce uniqueness of the normalized email and of
// the user name; under concurrent registration at most one Create wins.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
