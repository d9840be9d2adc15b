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

type InvoiceHandler struct {
	Service  *services.InvoiceService
	Renderer *render.Renderer
	ErrorLog *log.Logger
}

func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)

	invoices, err := h.Service.GetInvoices(r.Context())
	if err != nil {
		h.ErrorLog.Printf("list invoices: %v", err)
		data.Error = i18n.T(data.Locale, "error.fetch")
		invoices = []models.Invoice{}
	}

	data.Payload = invoices
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "invoices.tmpl", data)
}

func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)

	invoice, err := h.Service.GetInvoiceByID(r.Context(), getParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			renderNotFound(w, h.Renderer, h.ErrorLog, data, "invoice.not_found")
			return
		}
		serverError(w, h.ErrorLog, err)
		return
	}

	data.Payload = invoice
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "invoice.tmpl", data)
}
