package model

import (
	"errors"
	"net/http"

	"blogpost-backend/pkg/jwt"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid login credentials")
)

const (
	MsgMissingCredentials = "Error: Missing fields must be filled (username, password)"
	MsgInvalidCredentials = "Unsuccessful: Invalid Login Credentials"
	MsgSecretMissing      = "Error: Unconfigured JWT Secret"
	MsgLoginFailed        = "Unsuccessful: Something went wrong! Please try again later."
	MsgLoggedIn           = "Success: You logged in the system!"
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func ToMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return MsgMissingCredentials
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, jwt.ErrSecretNotConfigured):
		return MsgSecretMissing
	default:
		return MsgLoginFailed
	}
}
