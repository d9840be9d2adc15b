package handlers

import (
	"errors"
	"log"
	"net/http"

	"khadamatFront/internal/i18n"
	"khadamatFront/internal/models"
	"khadamatFront/internal/render"
	"khadamatFront/internal/services"
)

type ServiceHandler struct {
	Service  *services.ServiceService
	Renderer *render.Renderer
	ErrorLog *log.Logger
}

func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)

	items, err := h.Service.GetServices(r.Context())
	if err != nil {
		h.ErrorLog.Printf("list services: %v", err)
		data.Error = i18n.T(data.Locale, "error.fetch")
		items = []models.Service{}
	}

	data.Payload = items
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "services.tmpl", data)
}

func (h *ServiceHandler) GetServiceBySlug(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)

	service, err := h.Service.GetServiceBySlug(r.Context(), getParam(r, "slug"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			renderNotFound(w, h.Renderer, h.ErrorLog, data, "service.not_found")
			return
		}
		serverError(w, h.ErrorLog, err)
		return
	}

	data.Payload = service
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "service.tmpl", data)
}
