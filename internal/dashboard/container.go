package dashboard

import (
	"github.com/quizforge/quizforge/internal/streak"
	"gorm.io/gorm"
)

type DashboardContainer struct {
	Handler *Handler
	Service DashboardService
}

func NewDashboardContainer(db *gorm.DB, streaks streak.StreakService) *DashboardContainer {
	service := NewService(db, streaks)
	handler := NewHandler(service)

	return &DashboardContainer{
		Handler: handler,
		Service: service,
	}
}
