package handlers

import (
	"errors"
	"log"
	"net/http"

	"khadamatFront/internal/i18n"
	"khadamatFront/internal/render"
	"khadamatFront/internal/repositories"
)

// getParam returns a path parameter regardless of whether the router stores
// it with a leading colon or not. It also supports the standard net/http
// PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.PathValue(name)
}

func formValues(r *http.Request) map[string]string {
	values := map[string]string{}
	for key := range r.PostForm {
		values[key] = r.PostForm.Get(key)
	}
	return values
}

func serverError(w http.ResponseWriter, errorLog *log.Logger, err error) {
	errorLog.Output(2, err.Error())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func renderPage(w http.ResponseWriter, rd *render.Renderer, errorLog *log.Logger, status int, page string, data *render.Data) {
	if err := rd.Page(w, status, page, data); err != nil {
		serverError(w, errorLog, err)
	}
}

func renderNotFound(w http.ResponseWriter, rd *render.Renderer, errorLog *log.Logger, data *render.Data, messageKey string) {
	data.Payload = i18n.T(data.Locale, messageKey)
	renderPage(w, rd, errorLog, http.StatusNotFound, "notfound.tmpl", data)
}

// backendErrorMessage surfaces the backend's own error string when it sent
// one, and the localized fallback otherwise. Transport failures get logged;
// backend-reported ones are expected traffic.
func backendErrorMessage(err error, locale i18n.Locale, fallbackKey string, errorLog *log.Logger) string {
	var apiErr *repositories.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if !errors.As(err, &apiErr) {
		errorLog.Printf("backend call failed: %v", err)
	}
	return i18n.T(locale, fallbackKey)
}
