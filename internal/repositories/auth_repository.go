package repositories

import (
	"context"
	"net/url"

	"khadamatFront/internal/models"
)

type AuthRepository struct {
	Client *Client
}

// otpEnvelope wraps the credentials returned by the OTP issuing endpoints.
// Older backend builds spell the key "Details"; both are accepted and the
// "Detail" casing wins.
type otpEnvelope struct {
	Detail  *models.OTPCredentials `json:"Detail"`
	Details *models.OTPCredentials `json:"Details"`
}

func (e otpEnvelope) credentials() (models.OTPCredentials, error) {
	if e.Detail != nil && e.Detail.Token != "" {
		return *e.Detail, nil
	}
	if e.Details != nil && e.Details.Token != "" {
		return *e.Details, nil
	}
	return models.OTPCredentials{}, models.ErrNoCredentials
}

func (r *AuthRepository) Login(ctx context.Context, req models.LoginRequest) error {
	return r.Client.postJSON(ctx, "/auth/login/", req, nil)
}

func (r *AuthRepository) RequestLoginOTP(ctx context.Context, phone string) (models.OTPCredentials, error) {
	var env otpEnvelope
	body := map[string]string{"phone": phone}
	if err := r.Client.postJSON(ctx, "/auth/login/otp/", body, &env); err != nil {
		return models.OTPCredentials{}, err
	}
	return env.credentials()
}

func (r *AuthRepository) ValidateLoginOTP(ctx context.Context, token, otp string) error {
	body := map[string]string{"otp": otp}
	return r.Client.postJSON(ctx, "/auth/login/validate-otp/"+url.PathEscape(token)+"/", body, nil)
}

func (r *AuthRepository) Register(ctx context.Context, req models.RegisterRequest) (models.OTPCredentials, error) {
	var env otpEnvelope
	if err := r.Client.postJSON(ctx, "/auth/register/", req, &env); err != nil {
		return models.OTPCredentials{}, err
	}
	return env.credentials()
}

func (r *AuthRepository) ValidateRegisterOTP(ctx context.Context, token, code string) error {
	body := map[string]string{"code": code}
	return r.Client.postJSON(ctx, "/auth/register/validate-otp/"+url.PathEscape(token)+"/", body, nil)
}

func (r *AuthRepository) RequestPasswordReset(ctx context.Context, phone string) (models.OTPCredentials, error) {
	var env otpEnvelope
	body := map[string]string{"phone": phone}
	if err := r.Client.postJSON(ctx, "/accounts/reset-password-otp/", body, &env); err != nil {
		return models.OTPCredentials{}, err
	}
	return env.credentials()
}

func (r *AuthRepository) ValidatePasswordReset(ctx context.Context, token string, req models.ResetPasswordRequest) error {
	return r.Client.postJSON(ctx, "/accounts/reset-password-validate-otp/"+url.PathEscape(token)+"/", req, nil)
}
