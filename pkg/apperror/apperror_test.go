package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type domainErr struct{ reason string }

func (d *domainErr) Error() string { return d.reason }

func (d *domainErr) AppError() *AppError {
	return New(http.StatusBadRequest, CodeValidation, d.reason)
}

func send(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Send(c, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSend(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   Code
		wantMsg    string
	}{
		{
			name:       "app error",
			err:        New(http.StatusConflict, CodeConflict, "username is already taken"),
			wantStatus: http.StatusConflict,
			wantCode:   CodeConflict,
			wantMsg:    "username is already taken",
		},
		{
			name:       "wrapped app error",
			err:        fmt.Errorf("handler: %w", New(http.StatusUnauthorized, CodeUnauthorized, "invalid token")),
			wantStatus: http.StatusUnauthorized,
			wantCode:   CodeUnauthorized,
			wantMsg:    "invalid token",
		},
		{
			name:       "mapper",
			err:        fmt.Errorf("search: %w", &domainErr{reason: "origin does not exist"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidation,
			wantMsg:    "origin does not exist",
		},
		{
			name:       "unknown",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternalFailure,
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := send(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, string(tt.wantCode), body["code"])
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Wrap(cause, http.StatusBadGateway, CodeUpstreamFailure, "flight api unavailable")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "flight api unavailable: dial tcp: timeout", err.Error())
}
