package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// AuthUseCase describes registration and authentication behavior.
type AuthUseCase interface {
	Register(ctx context.Context, userName, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
}

// LoginResult carries the authenticated account and its session token.
type LoginResult struct {
	User  User
	Token string
}

// TokenIssuer abstracts session token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, user User) (string, error)
}

type authService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenIssuer) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, userName, email, password string) (User, error) {
	userName = strings.TrimSpace(userName)
	email = NormalizeEmail(email)

	if userName == "" {
		return User{}, ValidationError("user name is required")
	}
	if !emailPattern.MatchString(email) {
		return User{}, ValidationError("a valid email address is required")
	}
	if len(password) < minPasswordLen {
		return User{}, ValidationError("password must be at least 6 characters")
	}

	// If the email is known, fail fast. The store's unique index remains the
	// arbiter under concurrent registration.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.New(),
		UserName:     userName,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         RoleShopper,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login collapses unknown email and wrong password into the same error so
// that failures cannot be used to enumerate accounts. Store faults keep
// their own identity and surface as unexpected errors upstream.
func (s *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, Token: token}, nil
}
