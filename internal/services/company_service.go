package services

import (
	"context"

	"khadamatFront/internal/models"
	"khadamatFront/internal/repositories"
)

type CompanyService struct {
	CompanyRepo *repositories.CompanyRepository
}

func (s *CompanyService) GetCompanies(ctx context.Context) ([]models.Company, error) {
	return s.CompanyRepo.GetCompanies(ctx)
}

func (s *CompanyService) GetCompanyBySlug(ctx context.Context, slug string) (models.Company, error) {
	if slug == "" {
		return models.Company{}, models.ErrNotFound
	}
	return s.CompanyRepo.GetCompanyBySlug(ctx, slug)
}
