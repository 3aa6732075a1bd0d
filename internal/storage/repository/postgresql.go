// Package repository implements the PostgreSQL data access layer for
// users, subscription types and subscriptions. Each entity exposes only
// the operations the services actually use: point lookups, existence
// checks, inserts, updates, deletes and the one popularity aggregate.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Registers the pgx driver for use with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Sentinel errors returned by the entity methods. The services translate
// them into the domain error taxonomy.
var (
	// ErrNotFound is returned when a point lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken is returned when an insert or update violates the
	// unique constraint on users.username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when an insert or update violates the
	// unique constraint on users.email.
	ErrEmailTaken = errors.New("email already taken")
)

// Storage wraps the PostgreSQL connection and implements the entity
// repositories.
type Storage struct {
	DB *sql.DB
}

// New opens a connection to PostgreSQL and verifies it with a ping.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// translateUniqueViolation maps a PostgreSQL unique-violation error to
// the matching sentinel by constraint name. Uniqueness is ultimately
// enforced by the database, so a concurrent duplicate that slips past
// the service's pre-check still surfaces here.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_email_key":
		return ErrEmailTaken
	}
	return err
}
