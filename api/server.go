// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, the middleware stack and the flat {error} body

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"feedreader-api/api/dto/responses"
	"feedreader-api/api/middleware"
	"feedreader-api/core/interfaces"
	"feedreader-api/pkg/featureflags"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger      interfaces.Logger
	Flags       featureflags.Manager
	RateLimit   int           // requests per window
	RateWindow  time.Duration // rate limit window
	CORSOrigins []string
}

func init() {
	huma.NewError = newError
}

// newError renders every error as {"error": ..., "details": [...]}
func newError(status int, message string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}

	return &responses.ErrorResponse{
		Status:  status,
		Message: message,
		Details: details,
	}
}

// NewAPI creates a Huma API on a chi router with the middleware stack
// configured by cfg. Zero values leave the matching middleware out.
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Accept", "Content-Length", "Content-Type", "X-User-ID", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "Retry-After"},
		MaxAge:         300,
	}).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Flags != nil {
		router.Use(middleware.FeatureFlagsMiddleware(cfg.Flags))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)))
	}

	config := huma.DefaultConfig("Feed Reader API", "1.0.0")
	config.Info.Description = "Subscribe to RSS, Atom and plain web pages and read their articles as sanitized HTML"

	api := humachi.New(router, config)

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	return api, router
}
