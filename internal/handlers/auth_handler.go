package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"khadamatFront/internal/i18n"
	"khadamatFront/internal/models"
	"khadamatFront/internal/render"
	"khadamatFront/internal/services"
)

type AuthHandler struct {
	Service  *services.AuthService
	Renderer *render.Renderer
	ErrorLog *log.Logger

	// EchoOTPCode propagates the one-time code into verification URLs.
	// Testing convenience, off by default.
	EchoOTPCode bool
}

type otpPage struct {
	Token string
	Code  string
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "login.tmpl", render.NewData(r))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	req := models.LoginRequest{
		Phone:    r.PostForm.Get("phone"),
		Password: r.PostForm.Get("password"),
	}
	if err := h.Service.Login(r.Context(), req); err != nil {
		data.Error = backendErrorMessage(err, data.Locale, "auth.login.failed", h.ErrorLog)
		data.Form = formValues(r)
		renderPage(w, h.Renderer, h.ErrorLog, http.StatusUnprocessableEntity, "login.tmpl", data)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) LoginOTPForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "otp_request.tmpl", render.NewData(r))
}

func (h *AuthHandler) RequestLoginOTP(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	creds, err := h.Service.RequestLoginOTP(r.Context(), r.PostForm.Get("phone"))
	if err != nil {
		data.Error = backendErrorMessage(err, data.Locale, "auth.otp.request_failed", h.ErrorLog)
		data.Form = formValues(r)
		renderPage(w, h.Renderer, h.ErrorLog, http.StatusUnprocessableEntity, "otp_request.tmpl", data)
		return
	}

	http.Redirect(w, r, h.verifyURL("/auth/login/otp/", creds), http.StatusSeeOther)
}

func (h *AuthHandler) LoginOTPVerifyForm(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	data.Payload = h.otpPageFrom(r)
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "otp_verify.tmpl", data)
}

func (h *AuthHandler) ValidateLoginOTP(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	page := h.otpPageFrom(r)
	if err := h.Service.ValidateLoginOTP(r.Context(), page.Token, r.PostForm.Get("otp")); err != nil {
		data.Error = backendErrorMessage(err, data.Locale, "auth.otp.failed", h.ErrorLog)
		data.Payload = page
		renderPage(w, h.Renderer, h.ErrorLog, http.StatusUnprocessableEntity, "otp_verify.tmpl", data)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "register.tmpl", render.NewData(r))
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	req := models.RegisterRequest{
		Phone:        r.PostForm.Get("phone"),
		Email:        r.PostForm.Get("email"),
		Username:     r.PostForm.Get("username"),
		UserType:     r.PostForm.Get("user_type"),
		Password:     r.PostForm.Get("password"),
		FullName:     r.PostForm.Get("full_name"),
		PasswordConf: r.PostForm.Get("password_conf"),
	}

	creds, err := h.Service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrPasswordMismatch) {
			data.Error = i18n.T(data.Locale, "auth.password_mismatch")
		} else {
			data.Error = backendErrorMessage(err, data.Locale, "auth.register.failed", h.ErrorLog)
		}
		data.Form = formValues(r)
		renderPage(w, h.Renderer, h.ErrorLog, http.StatusUnprocessableEntity, "register.tmpl", data)
		return
	}

	http.Redirect(w, r, h.verifyURL("/auth/register/otp/", creds), http.StatusSeeOther)
}

func (h *AuthHandler) RegisterOTPVerifyForm(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	data.Payload = h.otpPageFrom(r)
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "register_otp_verify.tmpl", data)
}

func (h *AuthHandler) ValidateRegisterOTP(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	page := h.otpPageFrom(r)
	if err := h.Service.ValidateRegisterOTP(r.Context(), page.Token, r.PostForm.Get("code")); err != nil {
		data.Error = backendErrorMessage(err, data.Locale, "auth.otp.failed", h.ErrorLog)
		data.Payload = page
		renderPage(w, h.Renderer, h.ErrorLog, http.StatusUnprocessableEntity, "register_otp_verify.tmpl", data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) ResetForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "reset_request.tmpl", render.NewData(r))
}

func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	creds, err := h.Service.RequestPasswordReset(r.Context(), r.PostForm.Get("phone"))
	if err != nil {
		data.Error = backendErrorMessage(err, data.Locale, "auth.reset.failed", h.ErrorLog)
		data.Form = formValues(r)
		renderPage(w, h.Renderer, h.ErrorLog, http.StatusUnprocessableEntity, "reset_request.tmpl", data)
		return
	}

	http.Redirect(w, r, h.verifyURL("/auth/reset/", creds), http.StatusSeeOther)
}

func (h *AuthHandler) ResetVerifyForm(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	data.Payload = h.otpPageFrom(r)
	renderPage(w, h.Renderer, h.ErrorLog, http.StatusOK, "reset_verify.tmpl", data)
}

func (h *AuthHandler) ValidatePasswordReset(w http.ResponseWriter, r *http.Request) {
	data := render.NewData(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	page := h.otpPageFrom(r)
	req := models.ResetPasswordRequest{
		Code:         r.PostForm.Get("code"),
		Password:     r.PostForm.Get("password"),
		PasswordConf: r.PostForm.Get("password_conf"),
	}
	if err := h.Service.ValidatePasswordReset(r.Context(), page.Token, req); err != nil {
		if errors.Is(err, models.ErrPasswordMismatch) {
			data.Error = i18n.T(data.Locale, "auth.password_mismatch")
		} else {
			data.Error = backendErrorMessage(err, data.Locale, "auth.otp.failed", h.ErrorLog)
		}
		data.Payload = page
		renderPage(w, h.Renderer, h.ErrorLog, http.StatusUnprocessableEntity, "reset_verify.tmpl", data)
		return
	}

	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

func (h *AuthHandler) verifyURL(base string, creds models.OTPCredentials) string {
	target := base + url.PathEscape(creds.Token)
	if h.EchoOTPCode && creds.Code != "" {
		target += "?code=" + url.QueryEscape(creds.Code)
	}
	return target
}

func (h *AuthHandler) otpPageFrom(r *http.Request) otpPage {
	page := otpPage{Token: getParam(r, "token")}
	if h.EchoOTPCode {
		page.Code = r.URL.Query().Get("code")
	}
	return page
}
