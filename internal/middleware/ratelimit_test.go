package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedHandler(cfg RateLimiterConfig) (http.Handler, *RateLimiter) {
	rl := NewRateLimiter(cfg)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return h, rl
}

func Test_RateLimiter_BurstThenReject(t *testing.T) {
	cfg := RateLimiterConfig{
		RequestsPerSecond: 0.001, // effectively no refill during the test
		BurstSize:         3,
		CleanupInterval:   time.Minute,
	}
	h, rl := newLimitedHandler(cfg)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/v1/products", nil)
		r.RemoteAddr = "203.0.113.7:1234"
		h.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code, "request %d within burst", i+1)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/v1/products", nil)
	r.RemoteAddr = "203.0.113.7:1234"
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":{"code":"rate_limit","message":"Too many requests. Please slow down."}}`, w.Body.String())
}

func Test_RateLimiter_KeysAreIndependent(t *testing.T) {
	cfg := RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         1,
		CleanupInterval:   time.Minute,
	}
	h, rl := newLimitedHandler(cfg)
	defer rl.Stop()

	first := httptest.NewRecorder()
	r1 := httptest.NewRequest("GET", "/api/v1/orders", nil)
	r1.RemoteAddr = "203.0.113.7:1234"
	h.ServeHTTP(first, r1)
	require.Equal(t, http.StatusOK, first.Code)

	blocked := httptest.NewRecorder()
	r2 := httptest.NewRequest("GET", "/api/v1/orders", nil)
	r2.RemoteAddr = "203.0.113.7:5678" // same IP, different port
	h.ServeHTTP(blocked, r2)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	other := httptest.NewRecorder()
	r3 := httptest.NewRequest("GET", "/api/v1/orders", nil)
	r3.RemoteAddr = "198.51.100.9:1234"
	h.ServeHTTP(other, r3)
	assert.Equal(t, http.StatusOK, other.Code)
}

func Test_GetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{
			name:       "x-forwarded-for single",
			forwarded:  "203.0.113.7",
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for list takes first",
			forwarded:  "203.0.113.7, 10.0.0.2",
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip",
			realIP:     "198.51.100.9",
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.9",
		},
		{
			name:       "remote addr strips port",
			remoteAddr: "203.0.113.7:4567",
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, GetClientIP(r))
		})
	}
}
