// Package create implements the HTTP handler for adding a subscription
// to a user.
//
// The handler accepts a JSON request with the subscription data,
// validates it, resolves the user from the URL and returns the created
// record including the denormalized subscription type name. Missing
// start date and status are defaulted by the service.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/grigorevsd/subscription-service/internal/http/response"
	"github.com/grigorevsd/subscription-service/internal/lib/sl"
	"github.com/grigorevsd/subscription-service/internal/lib/validate"
	"github.com/grigorevsd/subscription-service/internal/models"
)

// Service describes the business logic for adding subscriptions.
type Service interface {
	Add(ctx context.Context, userID int64, req models.SubscriptionInput) (*models.Subscription, error)
}

// Handler handles HTTP requests for adding subscriptions.
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
// @Summary Add a subscription to a user
// @Description Creates a subscription for the user in the URL. The start date defaults to now, the status to ACTIVE.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body models.SubscriptionInput true "New subscription data"
// @Success 201 {object} response.Response "Created subscription"
// @Failure 400 {object} response.Response "Validation failure"
// @Failure 404 {object} response.Response "User or subscription type not found"
// @Failure 500 {object} response.Response "Server error"
// @Router /users/{userId}/subscriptions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		log.Error("invalid user id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id"))
		return
	}

	var req models.SubscriptionInput
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

	sub, err := h.service.Add(r.Context(), userID, req)
	if err != nil {
		log.Error("failed to add subscription", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("added subscription", slog.Int64("id", sub.ID), slog.Int64("user_id", userID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.SuccessWithMessage("Subscription added successfully", sub))
}
