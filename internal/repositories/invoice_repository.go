package repositories

import (
	"context"
	"encoding/json"
	"net/url"

	"khadamatFront/internal/models"
)

type InvoiceRepository struct {
	Client *Client
}

func (r *InvoiceRepository) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	var raw json.RawMessage
	if err := r.Client.getJSON(ctx, "/invoices/", &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Invoice](raw), nil
}

func (r *InvoiceRepository) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	var invoice models.Invoice
	err := r.Client.getJSON(ctx, "/invoices/"+url.PathEscape(id)+"/", &invoice)
	if err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}
