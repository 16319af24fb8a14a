package attempt

import (
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/streak"
	"gorm.io/gorm"
)

type AttemptContainer struct {
	Handler *Handler
	Service AttemptService
	Repo    AttemptRepository
}

func NewAttemptContainer(db *gorm.DB, quizRepo quiz.QuizRepository, streaks streak.StreakService) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, quizRepo, streaks)
	handler := NewHandler(service)

	return &AttemptContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
