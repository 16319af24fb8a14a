package taxonomy

import "gorm.io/gorm"

type TaxonomyContainer struct {
	Handler *Handler
	Service TaxonomyService
	Repo    TaxonomyRepository
}

func NewTaxonomyContainer(db *gorm.DB) *TaxonomyContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &TaxonomyContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
