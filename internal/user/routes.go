package user

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/me", h.Me)
	r.Put("/me", h.UpdateProfile)
	r.Post("/change-password", h.ChangePassword)
	return r
}
