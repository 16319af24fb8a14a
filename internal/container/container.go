package container

import (
	"context"
	"log"
	"os"

	"github.com/quizforge/quizforge/internal/aiquiz"
	"github.com/quizforge/quizforge/internal/attempt"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/cleanup"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/dashboard"
	"github.com/quizforge/quizforge/internal/moderation"
	"github.com/quizforge/quizforge/internal/question"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/streak"
	"github.com/quizforge/quizforge/internal/taxonomy"
	"github.com/quizforge/quizforge/internal/upload"
	"github.com/quizforge/quizforge/internal/user"
)

type Container struct {
	UserContainer       *user.UserContainer
	ModerationContainer *moderation.ModerationContainer
	AIQuizContainer     *aiquiz.AIQuizContainer
	TaxonomyContainer   *taxonomy.TaxonomyContainer
	QuestionContainer   *question.QuestionContainer
	QuizContainer       *quiz.QuizContainer
	StreakService       streak.StreakService
	AttemptContainer    *attempt.AttemptContainer
	DashboardContainer  *dashboard.DashboardContainer
	UploadContainer     *upload.UploadContainer
	CleanupContainer    *cleanup.CleanupContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := migrate(); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	if err := userContainer.Repo.EnsureRoles(user.AllRoles); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	moderationContainer := moderation.NewModerationContainer()
	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx)
	taxonomyContainer := taxonomy.NewTaxonomyContainer(config.DB)

	questionContainer := question.NewQuestionContainer(
		config.DB,
		taxonomyContainer.Service,
		moderationContainer.Moderator,
		aiQuizContainer.Service,
	)
	quizContainer := quiz.NewQuizContainer(
		config.DB,
		questionContainer,
		taxonomyContainer.Service,
		aiQuizContainer.Service,
	)

	streakService := streak.NewService(config.DB)
	attemptContainer := attempt.NewAttemptContainer(config.DB, quizContainer.Repo, streakService)
	dashboardContainer := dashboard.NewDashboardContainer(config.DB, streakService)

	uploadContainer := upload.NewUploadContainer(
		config.DB,
		taxonomyContainer.Service,
		questionContainer.Service,
		quizContainer.Repo,
		aiQuizContainer.Service,
	)
	cleanupContainer := cleanup.NewCleanupContainer(config.DB)

	return &Container{
		UserContainer:       userContainer,
		ModerationContainer: moderationContainer,
		AIQuizContainer:     aiQuizContainer,
		TaxonomyContainer:   taxonomyContainer,
		QuestionContainer:   questionContainer,
		QuizContainer:       quizContainer,
		StreakService:       streakService,
		AttemptContainer:    attemptContainer,
		DashboardContainer:  dashboardContainer,
		UploadContainer:     uploadContainer,
		CleanupContainer:    cleanupContainer,
	}
}

func migrate() error {
	return config.DB.AutoMigrate(
		&user.Role{},
		&user.User{},
		&taxonomy.Category{},
		&taxonomy.Subcategory{},
		&taxonomy.Topic{},
		&question.Question{},
		&question.Choice{},
		&quiz.Quiz{},
		&quiz.QuizQuestion{},
		&attempt.Attempt{},
		&attempt.AttemptAnswer{},
		&streak.Streak{},
		&dashboard.StatsCache{},
		&upload.Attachment{},
	)
}
