package cleanup

import (
	"gorm.io/gorm"
)

type CleanupContainer struct {
	Handler *Handler
	Service CleanupService
	Repo    CleanupRepository
}

func NewCleanupContainer(db *gorm.DB) *CleanupContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service, db)

	return &CleanupContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
