package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/grigorevsd/subscription-service/internal/models"
)

// CreateSubscription inserts a new subscription and returns its
// generated ID. The caller is expected to have resolved the user and
// subscription type beforehand.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int64, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (user_id, subscription_type_id, start_date, end_date, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		sub.UserID, sub.SubscriptionTypeID, sub.StartDate, sub.EndDate, string(sub.Status)).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetSubscription returns a subscription by ID together with its type
// name. Returns ErrNotFound when no row matches.
func (s *Storage) GetSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT s.id, s.user_id, s.subscription_type_id, st.name, s.start_date, s.end_date, s.status
			  FROM subscriptions s
			  JOIN subscription_types st ON st.id = s.subscription_type_id
			  WHERE s.id = $1`
	sub := &models.Subscription{}
	row := s.DB.QueryRowContext(ctx, query, id)

	var endDate sql.NullTime
	var status string
	if err := row.Scan(&sub.ID, &sub.UserID, &sub.SubscriptionTypeID, &sub.SubscriptionTypeName,
		&sub.StartDate, &endDate, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if endDate.Valid {
		sub.EndDate = &endDate.Time
	}
	sub.Status = models.SubscriptionStatus(status)
	return sub, nil
}

// ListSubscriptionsByUser returns all subscriptions of one user, each
// joined with its type name. Ordering is whatever the store returns.
func (s *Storage) ListSubscriptionsByUser(ctx context.Context, userID int64) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptionsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT s.id, s.user_id, s.subscription_type_id, st.name, s.start_date, s.end_date, s.status
			  FROM subscriptions s
			  JOIN subscription_types st ON st.id = s.subscription_type_id
			  WHERE s.user_id = $1`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var sub models.Subscription
		var endDate sql.NullTime
		var status string
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.SubscriptionTypeID, &sub.SubscriptionTypeName,
			&sub.StartDate, &endDate, &status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if endDate.Valid {
			sub.EndDate = &endDate.Time
		}
		sub.Status = models.SubscriptionStatus(status)
		result = append(result, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteSubscription removes a subscription by ID and returns the
// number of deleted rows.
func (s *Storage) DeleteSubscription(ctx context.Context, id int64) (int64, error) {
	const op = "storage.DeleteSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscriptions WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// TopSubscriptionTypes groups subscriptions by type, counts each group
// and returns at most limit groups ordered by descending count. The
// tie-break between equal counts is store-determined.
func (s *Storage) TopSubscriptionTypes(ctx context.Context, limit int) ([]*models.TopSubscriptionType, error) {
	const op = "storage.TopSubscriptionTypes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT st.id, st.name, COUNT(s.id) AS count
			  FROM subscriptions s
			  JOIN subscription_types st ON st.id = s.subscription_type_id
			  GROUP BY st.id, st.name
			  ORDER BY count DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TopSubscriptionType
	for rows.Next() {
		var item models.TopSubscriptionType
		if err := rows.Scan(&item.ID, &item.Name, &item.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
