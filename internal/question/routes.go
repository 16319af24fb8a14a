package question

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/user"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin, user.RoleTeacher))
		r.Post("/", h.Create)
		r.Post("/generate", h.Generate)
		r.Put("/{id}", h.Update)
		r.Post("/{id}/verify", h.Verify)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
