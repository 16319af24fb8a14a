package aiquiz

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/user"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Post("/search", h.Search)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin, user.RoleTeacher))
		r.Post("/preview", h.Preview)
	})

	return r
}
