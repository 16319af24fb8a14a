package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Get("/stats", h.Stats)
	r.Get("/recent-attempts", h.RecentAttempts)

	return r
}
