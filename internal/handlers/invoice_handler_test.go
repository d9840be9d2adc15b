package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"khadamatFront/internal/repositories"
	"khadamatFront/internal/services"
)

func newInvoiceHandler(t *testing.T, srv *httptest.Server) *InvoiceHandler {
	t.Helper()
	return &InvoiceHandler{
		Service:  &services.InvoiceService{InvoiceRepo: &repositories.InvoiceRepository{Client: testClient(srv)}},
		Renderer: newTestRenderer(t),
		ErrorLog: testLogger(),
	}
}

func TestListInvoices(t *testing.T) {
	t.Run("renders cards with detail links", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"9","company":"Acme","total_amount":120.5,"is_paid":false,"deadline":"2025-03-01","deadline_status":"upcoming","items":[]}]`))
		}))
		defer srv.Close()

		rec := httptest.NewRecorder()
		newInvoiceHandler(t, srv).ListInvoices(rec, getRequest("/invoices"))

		body := rec.Body.String()
		assertContains(t, body, "Acme")
		assertContains(t, body, `href="/invoices/9"`)
		assertContains(t, body, "Unpaid")
	})

	t.Run("non-array body renders none-found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"detail":"unexpected"}`))
		}))
		defer srv.Close()

		rec := httptest.NewRecorder()
		newInvoiceHandler(t, srv).ListInvoices(rec, getRequest("/invoices"))

		assertContains(t, rec.Body.String(), "No invoices available.")
	})
}

func TestGetInvoiceByID(t *testing.T) {
	t.Run("renders items", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/invoices/9/" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"id":"9","company":"Acme","total_amount":120.5,"is_paid":true,"items":[{"service":"Sink repair","amount":120.5,"created_at":"2025-02-01"}]}`))
		}))
		defer srv.Close()

		rec := httptest.NewRecorder()
		newInvoiceHandler(t, srv).GetInvoiceByID(rec, getRequest("/invoices/9?:id=9"))

		body := rec.Body.String()
		assertContains(t, body, "Sink repair")
		assertContains(t, body, "Paid")
	})

	t.Run("404 renders not-found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		rec := httptest.NewRecorder()
		newInvoiceHandler(t, srv).GetInvoiceByID(rec, getRequest("/invoices/404?:id=404"))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 got %d", rec.Code)
		}
		assertContains(t, rec.Body.String(), "Invoice not found.")
	})
}
