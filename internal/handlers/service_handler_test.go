package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"khadamatFront/internal/repositories"
	"khadamatFront/internal/services"
)

func newServiceHandler(t *testing.T, srv *httptest.Server) *ServiceHandler {
	t.Helper()
	return &ServiceHandler{
		Service:  &services.ServiceService{ServiceRepo: &repositories.ServiceRepository{Client: testClient(srv)}},
		Renderer: newTestRenderer(t),
		ErrorLog: testLogger(),
	}
}

func TestListServices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title":"Sink repair","slug":"sink-repair","company":"Acme","service_status_display":"In progress","payment_status_display":"Pending"}]`))
	}))
	defer srv.Close()

	rec := httptest.NewRecorder()
	newServiceHandler(t, srv).ListServices(rec, getRequest("/services"))

	body := rec.Body.String()
	assertContains(t, body, "Sink repair")
	assertContains(t, body, `href="/services/sink-repair"`)
	assertContains(t, body, "In progress")
}

func TestGetServiceBySlug(t *testing.T) {
	t.Run("renders score placeholder when absent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"title":"Sink repair","slug":"sink-repair","company":"Acme","overall_score":null,"company_card":null}`))
		}))
		defer srv.Close()

		rec := httptest.NewRecorder()
		newServiceHandler(t, srv).GetServiceBySlug(rec, getRequest("/services/sink-repair?:slug=sink-repair"))

		body := rec.Body.String()
		assertContains(t, body, "Not scored yet.")
		assertContains(t, body, "No company card.")
	})

	t.Run("renders score when present", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"title":"Sink repair","slug":"sink-repair","company":"Acme","overall_score":4.5}`))
		}))
		defer srv.Close()

		rec := httptest.NewRecorder()
		newServiceHandler(t, srv).GetServiceBySlug(rec, getRequest("/services/sink-repair?:slug=sink-repair"))

		assertContains(t, rec.Body.String(), "4.5")
	})

	t.Run("404 renders not-found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		rec := httptest.NewRecorder()
		newServiceHandler(t, srv).GetServiceBySlug(rec, getRequest("/services/missing?:slug=missing"))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", rec.Code)
		}
		assertContains(t, rec.Body.String(), "Service not found.")
	})
}
