package upload

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/user"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Post("/", h.Upload)
	r.Get("/", h.List)
	r.Post("/{id}/generate-quiz", h.GenerateQuiz)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin, user.RoleTeacher))
		r.Delete("/{id}", h.Delete)
	})

	return r
}
