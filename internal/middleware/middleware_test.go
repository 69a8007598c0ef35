package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vaultpass/passgen-go/internal/metrics"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := RateLimit(ctx, 1, 2)(http.HandlerFunc(okHandler))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
		if rec.Code == http.StatusTooManyRequests && rec.Header().Get("Retry-After") == "" {
			t.Error("429 response missing Retry-After header")
		}
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two requests = %v, want 200", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want %d", codes[2], http.StatusTooManyRequests)
	}

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	req.RemoteAddr = "198.51.100.1:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("other client = %d, want 200", rec.Code)
	}
}

func TestClientLimiterSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cl := newClientLimiter(1, 1)
	cl.now = func() time.Time { return now }

	cl.get("a")
	now = now.Add(5 * time.Minute)
	cl.get("b")
	now = now.Add(6 * time.Minute)

	if remaining := cl.sweep(idleTTL); remaining != 1 {
		t.Fatalf("sweep() remaining = %d, want 1", remaining)
	}
	if _, ok := cl.clients["b"]; !ok {
		t.Error("recently seen client was swept")
	}
}

func TestLoggerSetsRequestID(t *testing.T) {
	var seen string
	h := Logger(metrics.New())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatal("request ID missing from context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("%s header = %q, want %q", RequestIDHeader, got, seen)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestLoggerKeepsIncomingRequestID(t *testing.T) {
	h := Logger(nil)(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("%s header = %q, want %q", RequestIDHeader, got, "abc-123")
	}
}
