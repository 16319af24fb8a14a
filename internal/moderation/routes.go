package moderation

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Post("/check", h.CheckContent)

	return r
}
