package services

import (
	"context"
	"strings"

	"khadamatFront/internal/models"
	"khadamatFront/internal/repositories"
)

type ServiceService struct {
	ServiceRepo *repositories.ServiceRepository
}

func (s *ServiceService) GetServices(ctx context.Context) ([]models.Service, error) {
	return s.ServiceRepo.GetServices(ctx)
}

func (s *ServiceService) GetServiceBySlug(ctx context.Context, slug string) (models.Service, error) {
	if slug == "" {
		return models.Service{}, models.ErrNotFound
	}
	return s.ServiceRepo.GetServiceBySlug(ctx, slug)
}

func (s *ServiceService) SubmitServiceRequest(ctx context.Context, req models.ServiceRequest) error {
	for _, field := range []string{req.CompanySlug, req.RecipientAddressID, req.Title, req.Slug, req.Descriptions} {
		if strings.TrimSpace(field) == "" {
			return models.ErrMissingFields
		}
	}
	return s.ServiceRepo.CreateServiceRequest(ctx, req)
}
