// Package list implements the HTTP handler for listing all
// subscriptions owned by one user.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/grigorevsd/subscription-service/internal/http/response"
	"github.com/grigorevsd/subscription-service/internal/lib/sl"
	"github.com/grigorevsd/subscription-service/internal/models"
)

// Service describes the business logic for listing a user's
// subscriptions.
type Service interface {
	ListForUser(ctx context.Context, userID int64) ([]*models.Subscription, error)
}

// Handler handles HTTP requests for listing a user's subscriptions.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New creates a Handler with the given logger and service.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary List a user's subscriptions
// @Tags Subscriptions
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} response.Response "Subscriptions"
// @Failure 404 {object} response.Response "User not found"
// @Failure 500 {object} response.Response "Server error"
// @Router /users/{userId}/subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"
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

	subs, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, response.Success(subs))
}
