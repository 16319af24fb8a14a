package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quizforge/quizforge/internal/auth"
)

func TestStatsRejectsMalformedSubject(t *testing.T) {
	h := NewHandler(nil)

	// A signed token whose subject is not a uuid must yield 401, not a panic.
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req = req.WithContext(auth.ContextWithClaims(req.Context(), &auth.Claims{UserID: "not-a-uuid", Role: "Student"}))
	rec := httptest.NewRecorder()

	h.Stats(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestStatsRejectsMissingClaims(t *testing.T) {
	h := NewHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()

	h.Stats(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
