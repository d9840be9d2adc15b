package main

import (
	"log"
	"time"

	"khadamatFront/internal/config"
	"khadamatFront/internal/handlers"
	"khadamatFront/internal/i18n"
	"khadamatFront/internal/render"
	"khadamatFront/internal/repositories"
	"khadamatFront/internal/services"
	"khadamatFront/ui"
)

type application struct {
	errorLog      *log.Logger
	infoLog       *log.Logger
	defaultLocale i18n.Locale

	companyHandler *handlers.CompanyHandler
	serviceHandler *handlers.ServiceHandler
	invoiceHandler *handlers.InvoiceHandler
	authHandler    *handlers.AuthHandler
	pageHandler    *handlers.PageHandler
}

func initializeApp(cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	renderer, err := render.New(ui.Files)
	if err != nil {
		return nil, err
	}

	client := repositories.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)

	// Repositories
	companyRepo := repositories.CompanyRepository{Client: client}
	serviceRepo := repositories.ServiceRepository{Client: client}
	invoiceRepo := repositories.InvoiceRepository{Client: client}
	authRepo := repositories.AuthRepository{Client: client}

	// Services
	companyService := &services.CompanyService{CompanyRepo: &companyRepo}
	serviceService := &services.ServiceService{ServiceRepo: &serviceRepo}
	invoiceService := &services.InvoiceService{InvoiceRepo: &invoiceRepo}
	authService := &services.AuthService{AuthRepo: &authRepo}

	defaultLocale, ok := i18n.Parse(cfg.Locale.Default)
	if !ok {
		defaultLocale = i18n.Persian
	}

	return &application{
		errorLog:      errorLog,
		infoLog:       infoLog,
		defaultLocale: defaultLocale,
		companyHandler: &handlers.CompanyHandler{
			Service:  companyService,
			Requests: serviceService,
			Renderer: renderer,
			ErrorLog: errorLog,
		},
		serviceHandler: &handlers.ServiceHandler{
			Service:  serviceService,
			Renderer: renderer,
			ErrorLog: errorLog,
		},
		invoiceHandler: &handlers.InvoiceHandler{
			Service:  invoiceService,
			Renderer: renderer,
			ErrorLog: errorLog,
		},
		authHandler: &handlers.AuthHandler{
			Service:     authService,
			Renderer:    renderer,
			ErrorLog:    errorLog,
			EchoOTPCode: cfg.Auth.EchoOTPCode,
		},
		pageHandler: &handlers.PageHandler{
			Renderer: renderer,
			ErrorLog: errorLog,
		},
	}, nil
}
