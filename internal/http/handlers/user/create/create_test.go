package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/grigorevsd/subscription-service/internal/errs"
	"github.com/grigorevsd/subscription-service/internal/models"
)

// MockService implements the create.Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.UserInput) (*models.User, error) {
	args := m.Called(ctx, req)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful creation",
			body: `{"username":"alice","email":"alice@example.com","firstName":"Alice"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, models.UserInput{
					Username:  "alice",
					Email:     "alice@example.com",
					FirstName: "Alice",
				}).Return(&models.User{
					ID:        1,
					Username:  "alice",
					Email:     "alice@example.com",
					FirstName: "Alice",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"message":"User created successfully"`,
		},
		{
			name:           "invalid json",
			body:           `{"username":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid request body"`,
		},
		{
			name:           "missing username",
			body:           `{"email":"alice@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Validation failed"`,
		},
		{
			name:           "invalid email",
			body:           `{"username":"alice","email":"not-an-email"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"email":"Email should be valid"`,
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","email":"alice@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, errs.Conflict("Username already exists"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Username already exists"`,
		},
		{
			name: "service failure",
			body: `{"username":"alice","email":"alice@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"An unexpected error occurred. Please try again later."`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
