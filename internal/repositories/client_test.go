package repositories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"khadamatFront/internal/models"
)

func TestGetJSON(t *testing.T) {
	t.Run("decodes body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/companies/company/acme/" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"name":"Acme","slug":"acme"}`))
		}))
		defer srv.Close()

		repo := CompanyRepository{Client: NewClient(srv.URL, 0)}
		company, err := repo.GetCompanyBySlug(context.Background(), "acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if company.Name != "Acme" {
			t.Fatalf("expected Acme got %q", company.Name)
		}
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		repo := CompanyRepository{Client: NewClient(srv.URL, 0)}
		_, err := repo.GetCompanyBySlug(context.Background(), "missing")
		if !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("expected ErrNotFound got %v", err)
		}
	})

	t.Run("error body becomes APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"boom"}`))
		}))
		defer srv.Close()

		repo := ServiceRepository{Client: NewClient(srv.URL, 0)}
		err := repo.CreateServiceRequest(context.Background(), models.ServiceRequest{CompanySlug: "acme"})

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError got %v", err)
		}
		if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "boom" {
			t.Fatalf("unexpected APIError %+v", apiErr)
		}
	})
}

func TestListDecoding(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"array", `[{"id":"1"},{"id":"2"}]`, 2},
		{"empty array", `[]`, 0},
		{"object instead of array", `{"detail":"nothing here"}`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			repo := InvoiceRepository{Client: NewClient(srv.URL, 0)}
			invoices, err := repo.GetInvoices(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(invoices) != tc.want {
				t.Fatalf("expected %d invoices got %d", tc.want, len(invoices))
			}
		})
	}
}
