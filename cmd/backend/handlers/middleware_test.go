package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/hairizuan-noorazman/testcases/logger"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{
			name:      "caller ID is reused",
			header:    "req-123",
			wantReuse: true,
		},
		{
			name:      "missing ID is generated",
			header:    "",
			wantReuse: false,
		},
		{
			name:      "oversized ID is replaced",
			header:    string(make([]byte, 200)),
			wantReuse: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = logger.RequestID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()

			RequestIDMiddleware(next).ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got != seen {
				t.Errorf("response ID = %q, context ID = %q", got, seen)
			}
			if tc.wantReuse {
				if got != tc.header {
					t.Errorf("request ID = %q, want %q", got, tc.header)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("generated request ID %q is not a UUID: %v", got, err)
			}
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{
			name:      "success logs at info",
			status:    http.StatusOK,
			wantLevel: "info",
		},
		{
			name:      "client error logs at info",
			status:    http.StatusNotFound,
			wantLevel: "info",
		},
		{
			name:      "server error logs at error",
			status:    http.StatusInternalServerError,
			wantLevel: "error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			log := logger.NewTestLogger()
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/test-cases", nil)
			req.Header.Set(RequestIDHeader, "abc")
			w := httptest.NewRecorder()

			RequestIDMiddleware(NewLoggingMiddleware(log).Handler(next)).ServeHTTP(w, req)

			entries := log.EntriesWithLevel(tc.wantLevel)
			if len(entries) != 1 {
				t.Fatalf("got %d %s entries, want 1", len(entries), tc.wantLevel)
			}
			if entries[0].Fields["status"] != tc.status {
				t.Errorf("status field = %v, want %d", entries[0].Fields["status"], tc.status)
			}
			if entries[0].Fields[logger.RequestIDField] != "abc" {
				t.Errorf("request_id field = %v, want abc", entries[0].Fields[logger.RequestIDField])
			}
		})
	}
}
