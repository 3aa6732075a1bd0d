package models

import "time"

// SubscriptionStatus enumerates the states a subscription can be in.
// There are no server-enforced transitions between them: a caller may
// create a subscription in any of the three states.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "ACTIVE"
	StatusCancelled SubscriptionStatus = "CANCELLED"
	StatusExpired   SubscriptionStatus = "EXPIRED"
)

// SubscriptionType is reference data describing a service a user can
// subscribe to (e.g. "Netflix"). Types are seeded by migration and are
// not manageable through the API.
type SubscriptionType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Subscription links one user to one subscription type. EndDate may be
// nil, which means the subscription has no end date.
type Subscription struct {
	ID                   int64              `json:"id"`
	UserID               int64              `json:"-"`
	SubscriptionTypeID   int64              `json:"subscriptionTypeId"`
	SubscriptionTypeName string             `json:"subscriptionTypeName"` // Denormalized for display
	StartDate            time.Time          `json:"startDate"`
	EndDate              *time.Time         `json:"endDate,omitempty"`
	Status               SubscriptionStatus `json:"status"`
}

// SubscriptionInput is used to receive subscription data from a JSON
// request. SubscriptionTypeID is a pointer so that a missing field fails
// the required check instead of defaulting to zero. StartDate and Status
// are optional; the service fills in defaults before persisting.
type SubscriptionInput struct {
	SubscriptionTypeID *int64             `json:"subscriptionTypeId" validate:"required"`
	StartDate          *time.Time         `json:"startDate"`
	EndDate            *time.Time         `json:"endDate"`
	Status             SubscriptionStatus `json:"status" validate:"omitempty,oneof=ACTIVE CANCELLED EXPIRED"`
}

// TopSubscriptionType is one row of the popularity aggregate: a
// subscription type and how many subscriptions reference it.
type TopSubscriptionType struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
