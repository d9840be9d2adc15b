package services

import (
	"context"

	"khadamatFront/internal/models"
	"khadamatFront/internal/repositories"
)

type AuthService struct {
	AuthRepo *repositories.AuthRepository
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) error {
	return s.AuthRepo.Login(ctx, req)
}

func (s *AuthService) RequestLoginOTP(ctx context.Context, phone string) (models.OTPCredentials, error) {
	return s.AuthRepo.RequestLoginOTP(ctx, phone)
}

func (s *AuthService) ValidateLoginOTP(ctx context.Context, token, otp string) error {
	return s.AuthRepo.ValidateLoginOTP(ctx, token, otp)
}

// Register checks the password pair locally before handing off; everything
// else (uniqueness, formats, OTP issuance) is the backend's business.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.OTPCredentials, error) {
	if req.Password != req.PasswordConf {
		return models.OTPCredentials{}, models.ErrPasswordMismatch
	}
	return s.AuthRepo.Register(ctx, req)
}

func (s *AuthService) ValidateRegisterOTP(ctx context.Context, token, code string) error {
	return s.AuthRepo.ValidateRegisterOTP(ctx, token, code)
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, phone string) (models.OTPCredentials, error) {
	return s.AuthRepo.RequestPasswordReset(ctx, phone)
}

func (s *AuthService) ValidatePasswordReset(ctx context.Context, token string, req models.ResetPasswordRequest) error {
	if req.Password != req.PasswordConf {
		return models.ErrPasswordMismatch
	}
	return s.AuthRepo.ValidatePasswordReset(ctx, token, req)
}
