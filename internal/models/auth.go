package models

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	UserType     string `json:"user_type"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	PasswordConf string `json:"password_conf"`
}

// OTPCredentials is the payload of the Detail envelope returned by the OTP
// issuing endpoints. Code is populated for testing setups only.
type OTPCredentials struct {
	Token string `json:"token"`
	Code  string `json:"code"`
}

type ResetPasswordRequest struct {
	Code         string `json:"code"`
	Password     string `json:"password"`
	PasswordConf string `json:"password_conf"`
}
