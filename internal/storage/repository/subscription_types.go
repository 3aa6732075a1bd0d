package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/grigorevsd/subscription-service/internal/models"
)

// GetSubscriptionType returns a subscription type by ID. Returns
// ErrNotFound when no row matches.
func (s *Storage) GetSubscriptionType(ctx context.Context, id int64) (*models.SubscriptionType, error) {
	const op = "storage.GetSubscriptionType"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description
			  FROM subscription_types
			  WHERE id = $1`
	st := &models.SubscriptionType{}
	row := s.DB.QueryRowContext(ctx, query, id)
	var description sql.NullString
	if err := row.Scan(&st.ID, &st.Name, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if description.Valid {
		st.Description = description.String
	}
	return st, nil
}

// SubscriptionTypeExists reports whether a subscription type with the
// given ID exists.
func (s *Storage) SubscriptionTypeExists(ctx context.Context, id int64) (bool, error) {
	const op = "storage.SubscriptionTypeExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (SELECT 1 FROM subscription_types WHERE id = $1)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
