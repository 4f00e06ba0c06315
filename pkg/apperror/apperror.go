package apperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Code string

const (
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeConflict        Code = "CONFLICT"
	CodeUpstreamFailure Code = "UPSTREAM_FAILURE"
	CodeTimeout         Code = "TIMEOUT"
	CodeInternalFailure Code = "INTERNAL_FAILURE"
)

// AppError carries everything a handler needs to render an error response.
type AppError struct {
	Status  int
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, code Code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

func Wrap(err error, status int, code Code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Err: err}
}

// Mapper lets domain errors describe their own HTTP representation without
// importing gin.
type Mapper interface {
	AppError() *AppError
}

// Send writes err as a JSON error body. Unknown errors become a 500 and their
// text is not echoed to the client.
func Send(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		var m Mapper
		if errors.As(err, &m) {
			appErr = m.AppError()
		}
	}

	if appErr != nil {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal Server Error",
		"code":  CodeInternalFailure,
	})
}
