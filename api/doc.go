// Package api provides the HTTP API layer of the feed reader.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and middleware stack
// - handlers/: feed and article handlers over the core services
// - dto/: request and response bodies and their mappers
// - middleware/: request logging, feature flags, rate limiting
//
// # Routes
//
//	POST   /feeds                 subscribe, 201 with the stored feed
//	GET    /feeds                 list subscriptions
//	GET    /feeds/preview?url=    parse without storing
//	GET    /feeds/{id}            one feed
//	PATCH  /feeds/{id}            refresh
//	PUT    /feeds/{id}            rename or recategorize
//	DELETE /feeds/{id}            unsubscribe
//	GET    /feeds/{id}/articles   page through a feed
//	GET    /articles/search?q=    title search
//	GET    /articles/favorites
//	GET    /articles/unread
//	GET    /articles/count
//	POST   /articles/read-all
//	GET    /articles/{id}
//	POST   /articles/{id}/read
//	POST   /articles/{id}/favorite
//
// The caller is identified by the X-User-ID header, "anonymous" when absent.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPI(api.APIConfig{
//	    Logger:     logger,
//	    Flags:      flags,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewFeedHandler(feedService).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Every error response has the same flat body:
//
//	{"error": "failed to add feed", "details": ["fetch https://...: connection refused"]}
//
// Domain errors map to statuses: not found 404, validation 400, an
// unreachable source 502, anything else 500.
package api
