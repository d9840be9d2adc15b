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

type CompanyHandler struct {
	Service  *services.CompanyService
	Requests *services.ServiceService
	Renderer *render.Renderer
	ErrorLog *log.Logger
}

func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)

	companies, err := h.Service.GetCompanies(r.Context())
	if err != nil {
		h.ErrorLog.Printf("list companies: %v", err)
		data.Error = i18n.T(data.Locale, "error.fetch")
		companies = []models.Company{}
	}

	data.Payload = companies
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "companies.tmpl", data)
}

func (h *CompanyHandler) GetCompanyBySlug(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)

	company, err := h.Service.GetCompanyBySlug(r.Context(), getParam(r, "slug"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			renderNotFound(w, h.Renderer, h.ErrorLog, data, "company.not_found")
			return
		}
		serverError(w, h.ErrorLog, err)
		return
	}

	data.Payload = company
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "company.tmpl", data)
}

// SubmitServiceRequest posts the service-request draft and re-renders the
// company page with either a success banner (fields cleared, company slug
// kept) or the failure message with the submitted values preserved.
func (h *CompanyHandler) SubmitServiceRequest(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	slug := getParam(r, "slug")

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	req := models.ServiceRequest{
		CompanySlug:        slug,
		RecipientAddressID: r.PostForm.Get("recipient_address_id"),
		Title:              r.PostForm.Get("title"),
		Slug:               r.PostForm.Get("slug"),
		Descriptions:       r.PostForm.Get("descriptions"),
	}
	submitErr := h.Requests.SubmitServiceRequest(r.Context(), req)

	company, err := h.Service.GetCompanyBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			renderNotFound(w, h.Renderer, h.ErrorLog, data, "company.not_found")
			return
		}
		serverError(w, h.ErrorLog, err)
		return
	}
	data.Payload = company

	status := http.StatusOK
	switch {
	case submitErr == nil:
		data.Success = i18n.T(data.Locale, "request.success")
	case errors.Is(submitErr, models.ErrMissingFields):
		data.Error = i18n.T(data.Locale, "request.missing")
		data.Form = formValues(r)
		status = http.StatusUnprocessableEntity
	default:
		data.Error = backendErrorMessage(submitErr, data.Locale, "request.failed", h.ErrorLog)
		data.Form = formValues(r)
		status = http.StatusUnprocessableEntity
	}

	renderPage(w, h.Renderer, h.ErrorLog, status, "company.tmpl", data)
}
