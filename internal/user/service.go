package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// Validation limits for registration input
const (
	MaxUsernameLength = 50
	MinPasswordLength = 8
)

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Location *string
}

// AuthResult bundles the authenticated user with their bearer token
type AuthResult struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// TokenIssuer signs bearer tokens for authenticated users
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

// Service defines the interface for account operations
type Service interface {
	Register(ctx context.Context, input RegisterInput) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	Me(ctx context.Context, actor *domain.User) (*domain.User, error)
}

// service implements the Service interface
type service struct {
	repo   repository.User
	tokens TokenIssuer
}

// NewService creates a new user service
func NewService(repo repository.User, tokens TokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

// NormalizeUsername canonicalizes a username for storage and lookup.
// Unicode is NFC-normalized and case-folded so visually identical names
// collide on the unique constraint instead of coexisting.
func NormalizeUsername(username string) string {
	folded := cases.Fold().String(norm.NFC.String(username))
	return strings.TrimSpace(folded)
}

// Register creates a new account. Role defaults to CUSTOMER when unset.
func (s *service) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info("Register called", "username", input.Username)

	username := NormalizeUsername(input.Username)
	if username == "" || len(username) > MaxUsernameLength {
		return domain.User{}, fmt.Errorf("%w: username must be 1-%d characters", domain.ErrInvalidInput, MaxUsernameLength)
	}
	if len(input.Password) < MinPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.IsValidRole(role) {
		return domain.User{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", "error", err)
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := domain.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Location:     input.Location,
	}

	if err := s.repo.InsertUser(ctx, &newUser); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			log.Warn("Username already taken", "username", username)
			return domain.User{}, err
		}
		log.Error("Failed to insert user", "error", err, "username", username)
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	log.Info("User registered", "user_id", newUser.ID, "username", newUser.Username, "role", newUser.Role)
	return newUser, nil
}

// Authenticate verifies credentials and issues a bearer token.
// Unknown usernames and wrong passwords both return ErrBadCredentials.
func (s *service) Authenticate(ctx context.Context, username, password string) (*AuthResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Authenticate called", "username", username)

	u, err := s.repo.GetUserByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrBadCredentials
		}
		log.Error("Failed to look up user", "error", err, "username", username)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		log.Warn("Password mismatch", "username", username)
		return nil, domain.ErrBadCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		log.Error("Failed to issue token", "error", err, "user_id", u.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("User authenticated", "user_id", u.ID, "username", u.Username)
	return &AuthResult{User: *u, Token: token}, nil
}

// GetByID retrieves a user by ID
func (s *service) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// Me returns the authenticated user's own record
func (s *service) Me(ctx context.Context, actor *domain.User) (*domain.User, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetUserByID(ctx, actor.ID)
}
