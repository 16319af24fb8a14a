package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/container"
	"github.com/quizforge/quizforge/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:       c.UserContainer.Handler,
		ModerationHandler: c.ModerationContainer.Handler,
		AIQuizHandler:     c.AIQuizContainer.Handler,
		TaxonomyHandler:   c.TaxonomyContainer.Handler,
		QuestionHandler:   c.QuestionContainer.Handler,
		QuizHandler:       c.QuizContainer.Handler,
		AttemptHandler:    c.AttemptContainer.Handler,
		DashboardHandler:  c.DashboardContainer.Handler,
		UploadHandler:     c.UploadContainer.Handler,
		CleanupHandler:    c.CleanupContainer.Handler,
	})

	log := config.WithContext(nil)

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		log.Info("Starting in Lambda mode")
		lambda.Start(httpadapter.NewV2(handler).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("Starting HTTP server")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
