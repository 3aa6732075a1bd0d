package subscriptionservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/grigorevsd/subscription-service/internal/config"
	"github.com/grigorevsd/subscription-service/internal/http/handlers/health"
	subcreate "github.com/grigorevsd/subscription-service/internal/http/handlers/subscription/create"
	sublist "github.com/grigorevsd/subscription-service/internal/http/handlers/subscription/list"
	subremove "github.com/grigorevsd/subscription-service/internal/http/handlers/subscription/remove"
	subtop "github.com/grigorevsd/subscription-service/internal/http/handlers/subscription/top"
	usercreate "github.com/grigorevsd/subscription-service/internal/http/handlers/user/create"
	userlist "github.com/grigorevsd/subscription-service/internal/http/handlers/user/list"
	userread "github.com/grigorevsd/subscription-service/internal/http/handlers/user/read"
	userremove "github.com/grigorevsd/subscription-service/internal/http/handlers/user/remove"
	userupdate "github.com/grigorevsd/subscription-service/internal/http/handlers/user/update"
	"github.com/grigorevsd/subscription-service/internal/http/mware"
	subservice "github.com/grigorevsd/subscription-service/internal/services/subscription"
	userservice "github.com/grigorevsd/subscription-service/internal/services/user"
)

// RegisterRoutes registers all routes of the service.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, userService *userservice.Service, subscriptionService *subservice.Service) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		mware.Metrics,
	)

	r.Group(func(r chi.Router) {
		r.Use(mware.RateLimit(logger, cfg.RPS, cfg.Burst))

		r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
		r.Get("/users", userlist.New(logger, userService).ServeHTTP)
		r.Get("/users/{id}", userread.New(logger, userService).ServeHTTP)
		r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)
		r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)

		r.Post("/users/{userId}/subscriptions", subcreate.New(logger, subscriptionService).ServeHTTP)
		r.Get("/users/{userId}/subscriptions", sublist.New(logger, subscriptionService).ServeHTTP)
		r.Delete("/users/{userId}/subscriptions/{id}", subremove.New(logger, subscriptionService).ServeHTTP)

		r.Get("/subscriptions/top", subtop.New(logger, subscriptionService).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
