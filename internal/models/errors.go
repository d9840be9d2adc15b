package models

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("models: no matching record found")
	ErrMissingFields    = errors.New("models: required field missing")
	ErrPasswordMismatch = errors.New("models: passwords do not match")
	ErrNoCredentials    = errors.New("models: response carried no otp credentials")
)
