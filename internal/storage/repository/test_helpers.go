package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/grigorevsd/subscription-service/internal/migrations"
	"github.com/grigorevsd/subscription-service/internal/models"
)

// setupTestDatabase starts a disposable PostgreSQL container, applies
// the real migrations and returns a ready Storage plus a cleanup
// function. Every test gets its own database.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err, "failed to create storage")

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath), "failed to run migrations")

	cleanup := func() {
		storage.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return storage, cleanup
}

// TestDataFactory creates rows directly in the database, bypassing the
// service layer.
type TestDataFactory struct {
	storage *Storage
}

func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser inserts a user and returns its id. Username and email get
// a random suffix so tests never collide on the unique constraints.
func (f *TestDataFactory) CreateUser(t *testing.T, prefix string) *models.User {
	t.Helper()
	suffix := uuid.New().String()[:8]
	user := &models.User{
		Username:  prefix + "_" + suffix,
		Email:     prefix + "_" + suffix + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	}
	err := f.storage.DB.QueryRow(
		`INSERT INTO users (username, email, first_name, last_name) VALUES ($1, $2, $3, $4) RETURNING id`,
		user.Username, user.Email, user.FirstName, user.LastName,
	).Scan(&user.ID)
	require.NoError(t, err)
	return user
}

// CreateSubscription inserts a subscription row and returns its id.
func (f *TestDataFactory) CreateSubscription(t *testing.T, userID, typeID int64, startDate time.Time, endDate *time.Time, status string) int64 {
	t.Helper()
	var id int64
	err := f.storage.DB.QueryRow(
		`INSERT INTO subscriptions (user_id, subscription_type_id, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, typeID, startDate, endDate, status,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// TypeIDByName resolves a seeded subscription type by its name.
func (f *TestDataFactory) TypeIDByName(t *testing.T, name string) int64 {
	t.Helper()
	var id int64
	err := f.storage.DB.QueryRow(`SELECT id FROM subscription_types WHERE name = $1`, name).Scan(&id)
	require.NoError(t, err, "seeded subscription type %q not found", name)
	return id
}
