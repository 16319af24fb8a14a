package question

import (
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/moderation"
	"github.com/quizforge/quizforge/internal/taxonomy"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Handler *Handler
	Service QuestionService
	Repo    QuestionRepository
}

func NewQuestionContainer(db *gorm.DB, tax taxonomy.TaxonomyService, mod *moderation.Moderator, gen aiquiz.Service) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, tax, mod, gen)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
