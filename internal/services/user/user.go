// Package user implements the business logic for user management:
// uniqueness of username and email, existence checks and the mapping of
// storage errors into the domain error taxonomy.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/grigorevsd/subscription-service/internal/errs"
	"github.com/grigorevsd/subscription-service/internal/models"
	"github.com/grigorevsd/subscription-service/internal/storage/repository"
)

// Repository describes the storage operations the user service needs.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) (int64, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user models.User) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// Service implements the user operations.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New creates a user Service with the given repository and logger.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create persists a new user. The username is checked before the email,
// so a request violating both reports the username conflict. A
// concurrent duplicate that slips past the checks is caught by the
// database constraint and reported the same way.
func (s *Service) Create(ctx context.Context, req models.UserInput) (*models.User, error) {
	taken, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		s.log.Warn("username already exists", slog.String("username", req.Username))
		return nil, errs.Conflict("Username already exists")
	}

	taken, err = s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		s.log.Warn("email already exists", slog.String("email", req.Email))
		return nil, errs.Conflict("Email already exists")
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if cerr := conflictFromStorage(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	s.log.Info("created new user", slog.Int64("id", id))
	return &user, nil
}

// Get returns a user by ID.
func (s *Service) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NotFound("User not found with ID: %d", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// Update overwrites the mutable fields of a user. Uniqueness is
// re-checked only for values that actually change, so renaming a user
// to its current username or email never conflicts.
func (s *Service) Update(ctx context.Context, id int64, req models.UserInput) (*models.User, error) {
	current, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NotFound("User not found with ID: %d", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if req.Username != current.Username {
		taken, err := s.repo.UsernameExists(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if taken {
			s.log.Warn("username already exists", slog.String("username", req.Username))
			return nil, errs.Conflict("Username already exists")
		}
	}
	if req.Email != current.Email {
		taken, err := s.repo.EmailExists(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			s.log.Warn("email already exists", slog.String("email", req.Email))
			return nil, errs.Conflict("Email already exists")
		}
	}

	updated := models.User{
		ID:        id,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if _, err := s.repo.UpdateUser(ctx, updated); err != nil {
		if cerr := conflictFromStorage(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("updated user", slog.Int64("id", id))
	return &updated, nil
}

// Delete removes a user by ID. Its subscriptions are removed by the
// storage cascade.
func (s *Service) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if count == 0 {
		return errs.NotFound("User not found with ID: %d", id)
	}

	s.log.Info("deleted user", slog.Int64("id", id))
	return nil
}

// conflictFromStorage maps the storage's unique-violation sentinels to
// domain conflicts. Returns nil for any other error.
func conflictFromStorage(err error) error {
	switch {
	case errors.Is(err, repository.ErrUsernameTaken):
		return errs.Conflict("Username already exists")
	case errors.Is(err, repository.ErrEmailTaken):
		return errs.Conflict("Email already exists")
	}
	return nil
}
