package services

import (
	"context"

	"khadamatFront/internal/models"
	"khadamatFront/internal/repositories"
)

type InvoiceService struct {
	InvoiceRepo *repositories.InvoiceRepository
}

func (s *InvoiceService) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.InvoiceRepo.GetInvoices(ctx)
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	if id == "" {
		return models.Invoice{}, models.ErrNotFound
	}
	return s.InvoiceRepo.GetInvoiceByID(ctx, id)
}
