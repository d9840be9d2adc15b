package handlers

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"khadamatFront/internal/i18n"
	"khadamatFront/internal/render"
	"khadamatFront/internal/repositories"
	"khadamatFront/ui"
)

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	rd, err := render.New(ui.Files)
	if err != nil {
		t.Fatalf("building renderer: %v", err)
	}
	return rd
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testClient(srv *httptest.Server) *repositories.Client {
	return repositories.NewClient(srv.URL, 0)
}

// getRequest builds a GET request carrying the English locale so assertions
// can match fixed strings.
func getRequest(target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	return r.WithContext(i18n.WithLocale(r.Context(), i18n.English))
}

func postRequest(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r.WithContext(i18n.WithLocale(r.Context(), i18n.English))
}

func assertContains(t *testing.T, body, want string) {
	t.Helper()
	if !strings.Contains(body, want) {
		t.Fatalf("body does not contain %q\n\n%s", want, body)
	}
}

func assertNotContains(t *testing.T, body, unwanted string) {
	t.Helper()
	if strings.Contains(body, unwanted) {
		t.Fatalf("body unexpectedly contains %q", unwanted)
	}
}
