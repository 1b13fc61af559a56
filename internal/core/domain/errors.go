package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrServerUnreachable  = errors.New("server is unreachable, check your connection or the API URL")
	ErrNotImplemented     = errors.New("user deletion is not implemented")
	ErrMissingEmployeeID  = errors.New("employee profile has no id")
	ErrInvalidInput       = errors.New("invalid input")
)
