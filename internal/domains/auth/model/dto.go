package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest - POST /login, JSON or urlencoded
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (r LoginRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}
	return nil
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token string
}
