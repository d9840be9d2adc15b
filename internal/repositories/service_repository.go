package repositories

import (
	"context"
	"encoding/json"
	"net/url"

	"khadamatFront/internal/models"
)

type ServiceRepository struct {
	Client *Client
}

func (r *ServiceRepository) GetServices(ctx context.Context) ([]models.Service, error) {
	var raw json.RawMessage
	if err := r.Client.getJSON(ctx, "/services/service/", &raw); err != nil {
		return nil, err
	}
	return decodeList[models.Service](raw), nil
}

func (r *ServiceRepository) GetServiceBySlug(ctx context.Context, slug string) (models.Service, error) {
	var service models.Service
	err := r.Client.getJSON(ctx, "/services/service/"+url.PathEscape(slug)+"/", &service)
	if err != nil {
		return models.Service{}, err
	}
	return service, nil
}

// CreateServiceRequest posts the draft; the backend's response body is not
// consumed, only the status matters.
func (r *ServiceRepository) CreateServiceRequest(ctx context.Context, req models.ServiceRequest) error {
	return r.Client.postJSON(ctx, "/services/", req, nil)
}
