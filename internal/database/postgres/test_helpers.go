package postgres

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shareshelf/shareshelf/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		terminate = setupTestDatabase(ctx)
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

// setupTestDatabase starts a disposable postgres container and applies the
// migrations. On any failure it leaves testPool nil so tests skip.
func setupTestDatabase(ctx context.Context) func() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupTestDatabase: %v\n", r)
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}

	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		terminate()
		return func() {}
	}

	if err := applyMigrations(connStr); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		terminate()
		return func() {}
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		fmt.Printf("WARNING: Failed to create pool: %v\n", err)
		terminate()
		return func() {}
	}

	testPool = pool
	return terminate
}

func applyMigrations(connStr string) error {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "../../../migrations")
}

// requireDB skips the test when the integration database is unavailable
func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}

func createTestUser(t *testing.T, role string) *domain.User {
	t.Helper()

	user := &domain.User{
		Username:     fmt.Sprintf("user_%s", uuid.NewString()[:13]),
		Email:        fmt.Sprintf("%s@example.test", uuid.NewString()[:8]),
		PasswordHash: "$2a$10$notarealhashbutgoodenoughfortests",
		Role:         role,
	}

	repo := NewUserRepository(testPool)
	require.NoError(t, repo.InsertUser(context.Background(), user))
	return user
}

func createTestItem(t *testing.T, ownerID, status string) *domain.Item {
	t.Helper()

	item := &domain.Item{
		OwnerID:       ownerID,
		Name:          fmt.Sprintf("item_%s", uuid.NewString()[:8]),
		Category:      "tools",
		Description:   "integration test item",
		OwnershipType: domain.OwnershipShare,
		Status:        status,
	}

	repo := NewItemRepository(testPool)
	require.NoError(t, repo.InsertItem(context.Background(), item))
	return item
}
