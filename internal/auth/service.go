package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	sharedauth "resumebuilder-backend/internal/shared/auth"
)

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Service orchestrates registration, login and profile lookup.
type Service struct {
	Repo   Repo
	Signer *sharedauth.Signer
}

// NewService constructs a Service.
func NewService(repo Repo, signer *sharedauth.Signer) *Service {
	return &Service{Repo: repo, Signer: signer}
}

// Register validates input, hashes the password and creates the identity,
// returning it together with a fresh session token.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return User{}, "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return User{}, "", fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return User{}, "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, _, err := s.Signer.Issue(user.ID)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and issues a session token. Unknown email and
// wrong password both fail with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, _, err := s.Signer.Issue(user.ID)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Profile fetches the identity behind an already-verified user ID. ErrNotFound
// for a verified ID means the store lost a live identity; callers treat it as
// a data-integrity fault.
func (s *Service) Profile(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}
