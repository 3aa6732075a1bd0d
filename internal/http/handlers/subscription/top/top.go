// Package top implements the HTTP handler for the subscription type
// popularity aggregate.
package top

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/grigorevsd/subscription-service/internal/http/response"
	"github.com/grigorevsd/subscription-service/internal/lib/sl"
	"github.com/grigorevsd/subscription-service/internal/models"
)

// Service describes the business logic for the popularity aggregate.
type Service interface {
	TopTypes(ctx context.Context) ([]*models.TopSubscriptionType, error)
}

// Handler handles HTTP requests for the popularity aggregate.
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
// @Summary Most popular subscription types
// @Description Returns up to three subscription types ordered by how many subscriptions reference them.
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} response.Response "Top subscription types"
// @Failure 500 {object} response.Response "Server error"
// @Router /subscriptions/top [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.top"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	top, err := h.service.TopTypes(r.Context())
	if err != nil {
		log.Error("failed to get top subscription types", sl.Err(err))
		response.RenderError(w, r, err)
		return
	}

	render.JSON(w, r, response.Success(top))
}
