// Package remove implements the HTTP handler for deleting a
// subscription on behalf of its owner. A subscription that belongs to a
// different user is rejected with 400, distinct from the 404 for a
// missing subscription.
package remove

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
)

// Service describes the business logic for deleting subscriptions.
type Service interface {
	Remove(ctx context.Context, userID, subscriptionID int64) error
}

// Handler handles HTTP requests for deleting subscriptions.
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
// @Summary Delete a user's subscription
// @Tags Subscriptions
// @Produce json
// @Param userId path int true "User ID"
// @Param id path int true "Subscription ID"
// @Success 200 {object} response.Response "Deleted"
// @Failure 400 {object} response.Response "Subscription does not belong to the user"
// @Failure 404 {object} response.Response "Subscription not found"
// @Failure 500 {object} response.Response "Server error"
// @Router /users/{userId}/subscriptions/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.remove"
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

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid subscription id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid subscription id"))
		return
	}

	if err := h.service.Remove(r.Context(), userID, id); err != nil {
		log.Error("failed to delete subscription", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	log.Info("deleted subscription", slog.Int64("id", id), slog.Int64("user_id", userID))
	render.JSON(w, r, response.SuccessWithMessage("Subscription deleted successfully", nil))
}
