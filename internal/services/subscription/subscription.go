// Package subscription implements the business logic for subscriptions:
// referential checks against users and subscription types, the
// defaulting policy on creation, the ownership rule on deletion and the
// popularity aggregate.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/grigorevsd/subscription-service/internal/errs"
	"github.com/grigorevsd/subscription-service/internal/models"
	"github.com/grigorevsd/subscription-service/internal/storage/repository"
)

// topLimit is how many groups the popularity aggregate returns.
const topLimit = 3

// Repository describes the subscription storage operations the service
// needs.
type Repository interface {
	CreateSubscription(ctx context.Context, sub models.Subscription) (int64, error)
	GetSubscription(ctx context.Context, id int64) (*models.Subscription, error)
	ListSubscriptionsByUser(ctx context.Context, userID int64) ([]*models.Subscription, error)
	DeleteSubscription(ctx context.Context, id int64) (int64, error)
	TopSubscriptionTypes(ctx context.Context, limit int) ([]*models.TopSubscriptionType, error)
}

// UserRepository is the slice of the user storage the service needs.
type UserRepository interface {
	UserExists(ctx context.Context, id int64) (bool, error)
}

// TypeRepository is the slice of the subscription type storage the
// service needs.
type TypeRepository interface {
	GetSubscriptionType(ctx context.Context, id int64) (*models.SubscriptionType, error)
}

// Service implements the subscription operations.
type Service struct {
	repo  Repository
	users UserRepository
	types TypeRepository
	log   *slog.Logger
}

// New creates a subscription Service.
func New(repo Repository, users UserRepository, types TypeRepository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		users: users,
		types: types,
		log:   log,
	}
}

// Add creates a subscription for the given user. Both the user and the
// subscription type must exist. A missing start date defaults to now, a
// missing status defaults to ACTIVE; the end date has no default.
func (s *Service) Add(ctx context.Context, userID int64, req models.SubscriptionInput) (*models.Subscription, error) {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		s.log.Warn("user not found", slog.Int64("user_id", userID))
		return nil, errs.NotFound("User not found with ID: %d", userID)
	}

	st, err := s.types.GetSubscriptionType(ctx, *req.SubscriptionTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("subscription type not found", slog.Int64("type_id", *req.SubscriptionTypeID))
			return nil, errs.NotFound("Subscription type not found with ID: %d", *req.SubscriptionTypeID)
		}
		return nil, fmt.Errorf("get subscription type: %w", err)
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	sub := models.Subscription{
		UserID:               userID,
		SubscriptionTypeID:   st.ID,
		SubscriptionTypeName: st.Name,
		StartDate:            startDate,
		EndDate:              req.EndDate,
		Status:               status,
	}
	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	sub.ID = id

	s.log.Info("created new subscription",
		slog.Int64("id", id), slog.Int64("user_id", userID), slog.String("type", st.Name))
	return &sub, nil
}

// ListForUser returns all subscriptions owned by the given user, each
// enriched with its type name.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]*models.Subscription, error) {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, errs.NotFound("User not found with ID: %d", userID)
	}

	subs, err := s.repo.ListSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	if subs == nil {
		subs = []*models.Subscription{}
	}
	return subs, nil
}

// Remove deletes a subscription on behalf of a user. A subscription that
// exists but belongs to another user is a conflict, not a not-found:
// the caller addressed a real resource under the wrong owner.
func (s *Service) Remove(ctx context.Context, userID, subscriptionID int64) error {
	sub, err := s.repo.GetSubscription(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NotFound("Subscription not found with ID: %d", subscriptionID)
		}
		return fmt.Errorf("get subscription: %w", err)
	}

	if sub.UserID != userID {
		s.log.Warn("subscription ownership mismatch",
			slog.Int64("subscription_id", subscriptionID),
			slog.Int64("owner_id", sub.UserID),
			slog.Int64("user_id", userID))
		return errs.Conflict("Subscription does not belong to user")
	}

	if _, err := s.repo.DeleteSubscription(ctx, subscriptionID); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}

	s.log.Info("deleted subscription", slog.Int64("id", subscriptionID))
	return nil
}

// TopTypes returns up to three subscription types ordered by how many
// subscriptions reference them. The tie-break between equal counts is
// store-determined.
func (s *Service) TopTypes(ctx context.Context) ([]*models.TopSubscriptionType, error) {
	top, err := s.repo.TopSubscriptionTypes(ctx, topLimit)
	if err != nil {
		return nil, fmt.Errorf("top subscription types: %w", err)
	}
	if top == nil {
		top = []*models.TopSubscriptionType{}
	}
	return top, nil
}
