package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("Generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		got := rec.Header().Get("X-Request-ID")
		if got == "" {
			t.Fatal("no request id in response")
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("generated id %q is not a uuid: %v", got, err)
		}
		if seen != got {
			t.Errorf("handler saw %q, response carries %q", seen, got)
		}
	})

	t.Run("Echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "caller-supplied-42")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied-42" {
			t.Errorf("response id = %q, want caller's id", got)
		}
		if seen != "caller-supplied-42" {
			t.Errorf("handler saw %q, want caller's id", seen)
		}
	})
}

func TestGetRequestIDOutsideChain(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(r); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
