package user

import (
	"errors"
	"net/http"

	"flightservice/pkg/apperror"
)

var (
	ErrMissingCredentials = apperror.New(http.StatusBadRequest, apperror.CodeValidation, "username and password are required")
	ErrUsernameTaken      = apperror.New(http.StatusConflict, apperror.CodeConflict, "username is already taken")
	ErrInvalidCredentials = apperror.New(http.StatusBadRequest, apperror.CodeValidation, "unable to log in with provided credentials")
	ErrUnauthorized       = apperror.New(http.StatusUnauthorized, apperror.CodeUnauthorized, "invalid or expired token")

	ErrUserNotFound = errors.New("user not found")
)
