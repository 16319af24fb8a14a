package attempt

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Post("/quiz/{quizID}/start", h.Start)
	r.Post("/{id}/submit", h.Submit)
	r.Get("/{id}/results", h.Results)
	r.Get("/", h.ListMine)

	return r
}
