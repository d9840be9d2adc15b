package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"khadamatFront/internal/models"
	"khadamatFront/internal/repositories"
)

func TestSubmitServiceRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	svc := &ServiceService{ServiceRepo: &repositories.ServiceRepository{Client: repositories.NewClient(srv.URL, 0)}}

	valid := models.ServiceRequest{
		CompanySlug:        "acme",
		RecipientAddressID: "7",
		Title:              "Fix sink",
		Slug:               "fix-sink",
		Descriptions:       "Kitchen sink is leaking.",
	}

	t.Run("missing field short-circuits", func(t *testing.T) {
		cases := []func(models.ServiceRequest) models.ServiceRequest{
			func(r models.ServiceRequest) models.ServiceRequest { r.CompanySlug = ""; return r },
			func(r models.ServiceRequest) models.ServiceRequest { r.RecipientAddressID = " "; return r },
			func(r models.ServiceRequest) models.ServiceRequest { r.Title = ""; return r },
			func(r models.ServiceRequest) models.ServiceRequest { r.Slug = ""; return r },
			func(r models.ServiceRequest) models.ServiceRequest { r.Descriptions = ""; return r },
		}
		for _, mutate := range cases {
			if err := svc.SubmitServiceRequest(context.Background(), mutate(valid)); !errors.Is(err, models.ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields got %v", err)
			}
		}
		if calls.Load() != 0 {
			t.Fatalf("backend was called %d times for invalid drafts", calls.Load())
		}
	})

	t.Run("valid draft is posted", func(t *testing.T) {
		if err := svc.SubmitServiceRequest(context.Background(), valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != 1 {
			t.Fatalf("expected one backend call, got %d", calls.Load())
		}
	})
}

func TestGetServiceBySlugEmptyParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called for an empty slug")
	}))
	defer srv.Close()

	svc := &ServiceService{ServiceRepo: &repositories.ServiceRepository{Client: repositories.NewClient(srv.URL, 0)}}
	if _, err := svc.GetServiceBySlug(context.Background(), ""); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
