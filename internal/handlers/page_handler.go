package handlers

import (
	"log"
	"net/http"

	"khadamatFront/internal/i18n"
	"khadamatFront/internal/render"
)

type PageHandler struct {
	Renderer *render.Renderer
	ErrorLog *log.Logger
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		data := render.NewData(r)
		data.Payload = i18n.T(data.Locale, "notfound.title")
		renderPage(w, h.Renderer, h.ErrorLog, http.StatusNotFound, "notfound.tmpl", data)
		return
	}
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "home.tmpl", render.NewData(r))
}

func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "dashboard.tmpl", render.NewData(r))
}
