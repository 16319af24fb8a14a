package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/attempt"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/cleanup"
	"github.com/quizforge/quizforge/internal/dashboard"
	"github.com/quizforge/quizforge/internal/middlewares"
	"github.com/quizforge/quizforge/internal/moderation"
	"github.com/quizforge/quizforge/internal/question"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/taxonomy"
	"github.com/quizforge/quizforge/internal/upload"
	"github.com/quizforge/quizforge/internal/user"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	ModerationHandler *moderation.Handler
	AIQuizHandler     *aiquiz.Handler
	TaxonomyHandler   *taxonomy.Handler
	QuestionHandler   *question.Handler
	QuizHandler       *quiz.Handler
	AttemptHandler    *attempt.Handler
	DashboardHandler  *dashboard.Handler
	UploadHandler     *upload.Handler
	CleanupHandler    *cleanup.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", cfg.CleanupHandler.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/refresh", cfg.UserHandler.Refresh)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/users", user.Routes(cfg.UserHandler))
	r.Mount("/categories", taxonomy.Routes(cfg.TaxonomyHandler))
	r.Mount("/moderate", moderation.Routes(cfg.ModerationHandler))
	r.Mount("/ai", aiquiz.Routes(cfg.AIQuizHandler))
	r.Mount("/questions", question.Routes(cfg.QuestionHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
	r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
	r.Mount("/upload", upload.Routes(cfg.UploadHandler))
	r.Mount("/admin", cleanup.Routes(cfg.CleanupHandler))

	return r
}
