package cleanup

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/user"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)
	r.Use(auth.RequireRole(user.RoleAdmin))

	r.Post("/cleanup/run", h.Run)
	r.Get("/cleanup/stats", h.Stats)
	r.Get("/health", h.Health)

	return r
}
