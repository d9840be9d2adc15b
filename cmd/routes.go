package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"khadamatFront/ui"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, app.resolveLocale)

	mux := pat.New()

	// Companies
	mux.Get("/companies", standardMiddleware.ThenFunc(app.companyHandler.ListCompanies))
	mux.Get("/companies/:slug", standardMiddleware.ThenFunc(app.companyHandler.GetCompanyBySlug))
	mux.Post("/companies/:slug/request", standardMiddleware.ThenFunc(app.companyHandler.SubmitServiceRequest))

	// Services
	mux.Get("/services", standardMiddleware.ThenFunc(app.serviceHandler.ListServices))
	mux.Get("/services/:slug", standardMiddleware.ThenFunc(app.serviceHandler.GetServiceBySlug))

	// Invoices
	mux.Get("/invoices", standardMiddleware.ThenFunc(app.invoiceHandler.ListInvoices))
	mux.Get("/invoices/:id", standardMiddleware.ThenFunc(app.invoiceHandler.GetInvoiceByID))

	// Auth
	mux.Get("/auth/login", standardMiddleware.ThenFunc(app.authHandler.LoginForm))
	mux.Post("/auth/login", standardMiddleware.ThenFunc(app.authHandler.Login))
	mux.Get("/auth/login/otp", standardMiddleware.ThenFunc(app.authHandler.LoginOTPForm))
	mux.Post("/auth/login/otp", standardMiddleware.ThenFunc(app.authHandler.RequestLoginOTP))
	mux.Get("/auth/login/otp/:token", standardMiddleware.ThenFunc(app.authHandler.LoginOTPVerifyForm))
	mux.Post("/auth/login/otp/:token", standardMiddleware.ThenFunc(app.authHandler.ValidateLoginOTP))
	mux.Get("/auth/register", standardMiddleware.ThenFunc(app.authHandler.RegisterForm))
	mux.Post("/auth/register", standardMiddleware.ThenFunc(app.authHandler.Register))
	mux.Get("/auth/register/otp/:token", standardMiddleware.ThenFunc(app.authHandler.RegisterOTPVerifyForm))
	mux.Post("/auth/register/otp/:token", standardMiddleware.ThenFunc(app.authHandler.ValidateRegisterOTP))
	mux.Get("/auth/reset", standardMiddleware.ThenFunc(app.authHandler.ResetForm))
	mux.Post("/auth/reset", standardMiddleware.ThenFunc(app.authHandler.RequestPasswordReset))
	mux.Get("/auth/reset/:token", standardMiddleware.ThenFunc(app.authHandler.ResetVerifyForm))
	mux.Post("/auth/reset/:token", standardMiddleware.ThenFunc(app.authHandler.ValidatePasswordReset))

	// Pages and assets; "/" is registered last because pat treats a
	// trailing-slash pattern as a prefix match.
	mux.Get("/dashboard", standardMiddleware.ThenFunc(app.pageHandler.Dashboard))
	mux.Get("/static/", http.FileServer(http.FS(ui.Files)))
	mux.Get("/", standardMiddleware.ThenFunc(app.pageHandler.Home))

	return mux
}
