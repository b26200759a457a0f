// Package auth implements the credential boundary: user creation with bcrypt
// hashing and a sign-in check that mints session tokens. Failures surface as
// the sentinel causes in internal/errs; anything else is an unknown failure
// and propagates to the caller untouched.
package auth

import (
	"context"
	"errors"

	"github.com/iparr-biocorellc/backoffice/internal/errs"
	"golang.org/x/crypto/bcrypt"
)

// User is an application account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
}

// UserStore is the persistence needed by the auth flows.
// Satisfied by storage.Postgres.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) error
	UserByEmail(ctx context.Context, email string) (User, error)
}

// Service performs credential sign-in and user creation.
type Service struct {
	store  UserStore
	tokens *TokenManager
}

// NewService creates an auth Service.
func NewService(store UserStore, tokens *TokenManager) *Service {
	return &Service{store: store, tokens: tokens}
}

// SignIn checks a credential pair and returns a session token.
// A missing user or a wrong password both report errs.ErrInvalidCredentials;
// the caller cannot distinguish which.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errs.ErrInvalidCredentials
	}

	user, err := s.store.UserByEmail(ctx, email)
	if errors.Is(err, errs.ErrUserNotFound) {
		return "", errs.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", errs.ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(user.ID)
}

// SignUp creates a new user account.
// Returns errs.ErrMissingCredentials for an empty email or password and
// errs.ErrEmailExists when the email is already registered.
func (s *Service) SignUp(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return errs.ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.store.CreateUser(ctx, email, string(hash))
}
