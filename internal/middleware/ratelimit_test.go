package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterPerClientWindow(t *testing.T) {
	rl := NewRateLimiter(5, 1*time.Second)
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		if !rl.allow("203.0.113.7") {
			t.Fatalf("attempt %d should pass", i+1)
		}
	}
	if rl.allow("203.0.113.7") {
		t.Error("attempt over the limit should be denied")
	}

	// A different client has its own window.
	if !rl.allow("203.0.113.8") {
		t.Error("other client should not share the exhausted window")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 80*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	if rl.allow("203.0.113.7") {
		t.Fatal("second attempt inside the window should be denied")
	}

	time.Sleep(120 * time.Millisecond)

	if !rl.allow("203.0.113.7") {
		t.Error("attempt after the window elapsed should pass")
	}
}

func TestRateLimiterMiddlewareReturns429(t *testing.T) {
	rl := NewRateLimiter(1, 1*time.Second)
	defer rl.Stop()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "198.51.100.4:9120"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := login(); code != http.StatusOK {
		t.Fatalf("first attempt: got %d, want 200", code)
	}
	if code := login(); code != http.StatusTooManyRequests {
		t.Errorf("second attempt: got %d, want 429", code)
	}
}

func TestClientIPResolution(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwarded-for wins over remote addr",
			headers:    map[string]string{"X-Forwarded-For": "10.1.0.9"},
			remoteAddr: "198.51.100.4:9120",
			want:       "10.1.0.9",
		},
		{
			name:       "forwarded-for chain takes the first hop",
			headers:    map[string]string{"X-Forwarded-For": "10.1.0.9, 172.16.4.2"},
			remoteAddr: "198.51.100.4:9120",
			want:       "10.1.0.9",
		},
		{
			name:       "real-ip used without forwarded-for",
			headers:    map[string]string{"X-Real-IP": "10.1.0.10"},
			remoteAddr: "198.51.100.4:9120",
			want:       "10.1.0.10",
		},
		{
			name:       "remote addr stripped of port",
			remoteAddr: "198.51.100.4:9120",
			want:       "198.51.100.4",
		},
		{
			name:       "remote addr without port kept as-is",
			remoteAddr: "198.51.100.4",
			want:       "198.51.100.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterCleanupDropsOnlyExpired(t *testing.T) {
	rl := NewRateLimiter(10, 100*time.Millisecond)
	defer rl.Stop()

	rl.allow("stale")
	rl.allow("active")

	time.Sleep(150 * time.Millisecond)
	rl.allow("active")

	rl.cleanup()

	rl.mu.RLock()
	_, staleKept := rl.clients["stale"]
	_, activeKept := rl.clients["active"]
	rl.mu.RUnlock()

	if staleKept {
		t.Error("fully expired client should be evicted")
	}
	if !activeKept {
		t.Error("client with a live timestamp should survive cleanup")
	}
}
