package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/grigorevsd/subscription-service/internal/errs"
	"github.com/grigorevsd/subscription-service/internal/models"
)

// MockService implements the create.Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, userID int64, req models.SubscriptionInput) (*models.Subscription, error) {
	args := m.Called(ctx, userID, req)
	if sub, ok := args.Get(0).(*models.Subscription); ok {
		return sub, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userID         string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "successful creation",
			userID: "1",
			body:   `{"subscriptionTypeId":3}`,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, int64(1), mock.MatchedBy(func(req models.SubscriptionInput) bool {
					return req.SubscriptionTypeID != nil && *req.SubscriptionTypeID == 3
				})).Return(&models.Subscription{
					ID:                   10,
					UserID:               1,
					SubscriptionTypeID:   3,
					SubscriptionTypeName: "Spotify",
					StartDate:            time.Now(),
					Status:               models.StatusActive,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"message":"Subscription added successfully"`,
		},
		{
			name:           "invalid user id",
			userID:         "abc",
			body:           `{"subscriptionTypeId":3}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid user id"`,
		},
		{
			name:           "missing subscription type",
			userID:         "1",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"subscriptionTypeId":"Subscription type ID is required"`,
		},
		{
			name:           "unknown status",
			userID:         "1",
			body:           `{"subscriptionTypeId":3,"status":"PAUSED"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Validation failed"`,
		},
		{
			name:   "user not found",
			userID: "99",
			body:   `{"subscriptionTypeId":3}`,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, int64(99), mock.Anything).
					Return(nil, errs.NotFound("User not found with ID: %d", 99))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"User not found with ID: 99"`,
		},
		{
			name:   "subscription type not found",
			userID: "1",
			body:   `{"subscriptionTypeId":777}`,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, int64(1), mock.Anything).
					Return(nil, errs.NotFound("Subscription type not found with ID: %d", 777))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Subscription type not found with ID: 777"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/users/"+tt.userID+"/subscriptions", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
