// Package create implements the HTTP handler for registering new users.
//
// The handler accepts a JSON request with the user data, validates it,
// asks the user service to persist it and returns the created record.
// Uniqueness conflicts and validation problems come back as 400.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/grigorevsd/subscription-service/internal/http/response"
	"github.com/grigorevsd/subscription-service/internal/lib/sl"
	"github.com/grigorevsd/subscription-service/internal/lib/validate"
	"github.com/grigorevsd/subscription-service/internal/models"
)

// Service describes the business logic for creating users.
type Service interface {
	Create(ctx context.Context, req models.UserInput) (*models.User, error)
}

// Handler handles HTTP requests for creating users.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Create a new user
// @Description Creates a user with a unique username and email.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.UserInput true "New user data"
// @Success 201 {object} response.Response "Created user"
// @Failure 400 {object} response.Response "Validation failure or conflict"
// @Failure 500 {object} response.Response "Server error"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UserInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create user", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("created user", slog.Int64("id", user.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.SuccessWithMessage("User created successfully", user))
}
