package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"feedreader-api/pkg/featureflags"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newLimiter(limit int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, window)
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, clock := newLimiter(3, time.Minute)

	assert.True(t, rl.Allow("127.0.0.1"))
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.False(t, rl.Allow("127.0.0.1"))

	assert.True(t, rl.Allow("192.168.1.1"))

	// one token refills every window/limit
	clock.Advance(20 * time.Second)
	assert.True(t, rl.Allow("127.0.0.1"))
	assert.False(t, rl.Allow("127.0.0.1"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl, clock := newLimiter(1, time.Minute)

	rl.Allow("a")
	rl.Allow("b")
	assert.Len(t, rl.clients, 2)

	clock.Advance(2 * time.Minute)
	rl.Allow("c")
	assert.Len(t, rl.clients, 1)
}

func withFlag(enabled bool, h http.Handler) http.Handler {
	manager := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.RateLimitEnabled: enabled,
	})
	return FeatureFlagsMiddleware(manager)(h)
}

func serve(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/feeds", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitMiddleware_Returns429OverLimit(t *testing.T) {
	rl, _ := newLimiter(2, time.Minute)
	handler := withFlag(true, RateLimitMiddleware(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	for i := 0; i < 2; i++ {
		rec := serve(handler, "127.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := serve(handler, "127.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")

	assert.Equal(t, http.StatusOK, serve(handler, "192.168.1.1:5678").Code)
}

func TestRateLimitMiddleware_DisabledByFlag(t *testing.T) {
	rl, _ := newLimiter(1, time.Minute)
	handler := withFlag(false, RateLimitMiddleware(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	for i := 0; i < 5; i++ {
		rec := serve(handler, "127.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestFeatureFlagsMiddleware(t *testing.T) {
	manager := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.PreviewCache: true,
	})

	var ctx context.Context
	handler := FeatureFlagsMiddleware(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	serve(handler, "127.0.0.1:1")

	assert.True(t, featureflags.IsEnabled(ctx, featureflags.PreviewCache))
	assert.False(t, featureflags.IsEnabled(ctx, featureflags.RateLimitEnabled))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		setupReq   func(*http.Request)
		expectedIP string
	}{
		{
			name: "uses last X-Forwarded-For hop",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1, 198.51.100.2")
			},
			expectedIP: "198.51.100.2",
		},
		{
			name: "uses X-Real-IP header",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "203.0.113.1")
			},
			expectedIP: "203.0.113.1",
		},
		{
			name: "falls back to RemoteAddr",
			setupReq: func(r *http.Request) {
				r.RemoteAddr = "192.168.1.1:1234"
			},
			expectedIP: "192.168.1.1:1234",
		},
		{
			name: "prefers X-Forwarded-For over X-Real-IP",
			setupReq: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.1")
				r.Header.Set("X-Real-IP", "198.51.100.1")
			},
			expectedIP: "203.0.113.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupReq(req)
			assert.Equal(t, tt.expectedIP, extractIP(req))
		})
	}
}
