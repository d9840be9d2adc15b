package repositories

import (
	"context"
	"encoding/json"
	"net/url"

	"khadamatFront/internal/models"
)

type CompanyRepository struct {
	Client *Client
}

func (r *CompanyRepository) GetCompanies(ctx context.Context) ([]models.Company, error) {
	var raw json.RawMessage
	if err := r.Client.getJSON(ctx, "/companies/company/", &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Company](raw), nil
}

func (r *CompanyRepository) GetCompanyBySlug(ctx context.Context, slug string) (models.Company, error) {
	var company models.Company
	err := r.Client.getJSON(ctx, "/companies/company/"+url.PathEscape(slug)+"/", &company)
	if err != nil {
		return models.Company{}, err
	}
	return company, nil
}
