package auth

import (
	"net/http"

	"BlogAPI/pkg/response"
)

var (
	ErrInvalidEmailOrPassword = response.NewError(http.StatusUnauthorized, "email or password is wrong")
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already registered")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
)
