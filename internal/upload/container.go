package upload

import (
	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/question"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/taxonomy"
	"gorm.io/gorm"
)

type UploadContainer struct {
	Handler *Handler
	Service UploadService
	Repo    AttachmentRepository
}

func NewUploadContainer(db *gorm.DB, tax taxonomy.TaxonomyService, questions question.QuestionService, quizRepo quiz.QuizRepository, gen aiquiz.Service) *UploadContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, tax, questions, quizRepo, gen)
	handler := NewHandler(service)

	return &UploadContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
