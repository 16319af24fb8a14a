package quiz

import (
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/question"
	"github.com/quizforge/quizforge/internal/taxonomy"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
	Repo    QuizRepository
}

func NewQuizContainer(db *gorm.DB, questions *question.QuestionContainer, tax taxonomy.TaxonomyService, gen aiquiz.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, questions.Repo, questions.Service, tax, gen)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
