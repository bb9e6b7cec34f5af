package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// stubIssuer returns a fixed token so tests can assert token plumbing
type stubIssuer struct {
	token string
	err   error
}

func (s *stubIssuer) Issue(userID, role string) (string, error) {
	return s.token, s.err
}

func newTestService(repo *FakeRepository) Service {
	return NewService(repo, &stubIssuer{token: "test-token"})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults role to customer", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		u, err := svc.Register(ctx, RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, u.Role)
		assert.NotEmpty(t, u.ID)

		// Password is stored hashed, never verbatim
		assert.NotEqual(t, "correct-horse", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")))
	})

	t.Run("accepts staff role", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		u, err := svc.Register(ctx, RegisterInput{
			Username: "inspector",
			Email:    "staff@example.com",
			Password: "correct-horse",
			Role:     domain.RoleStaff,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStaff, u.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.Register(ctx, RegisterInput{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "correct-horse",
			Role:     "SUPERADMIN",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.Register(ctx, RegisterInput{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "short",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterInput{Username: "alice", Email: "b@example.com", Password: "correct-horse"})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("case variants collide after normalization", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.Register(ctx, RegisterInput{Username: "Alice", Email: "a@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterInput{Username: "ALICE", Email: "b@example.com", Password: "correct-horse"})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := NewFakeRepository()
	svc := newTestService(repo)

	registered, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Authenticate(ctx, "alice", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, result.User.ID)
		assert.Equal(t, "test-token", result.Token)
	})

	t.Run("login is case-insensitive", func(t *testing.T) {
		result, err := svc.Authenticate(ctx, "ALICE", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, result.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrong-password")
		assert.ErrorIs(t, err, domain.ErrBadCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "mallory", "correct-horse")
		assert.ErrorIs(t, err, domain.ErrBadCredentials)
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(NewFakeRepository())

	registered, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("returns own record", func(t *testing.T) {
		me, err := svc.Me(ctx, &registered)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, me.ID)
	})

	t.Run("nil actor", func(t *testing.T) {
		_, err := svc.Me(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestNormalizeUsername_EquivalentFormsCollide(t *testing.T) {
	assert.Equal(t, "alice", NormalizeUsername("  Alice "))
	assert.Equal(t, NormalizeUsername("Café"), NormalizeUsername("Café"))
}
