package taxonomy

import (
	"github.com/go-chi/chi/v5"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/user"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware)

	r.Get("/", h.ListCategories)
	r.Get("/{id}", h.GetCategory)
	r.Get("/topics/{id}", h.GetTopic)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(user.RoleAdmin, user.RoleTeacher))
		r.Post("/", h.CreateCategory)
		r.Put("/{id}", h.UpdateCategory)
		r.Delete("/{id}", h.DeleteCategory)
		r.Post("/subcategories", h.CreateSubcategory)
		r.Post("/topics", h.CreateTopic)
	})

	return r
}
