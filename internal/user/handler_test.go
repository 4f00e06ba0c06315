package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := newTestService(t)
	r := gin.New()
	protected := r.Group("/", AuthMiddleware(svc))
	protected.GET("/whoami", func(c *gin.Context) {
		sess, _ := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"username": sess.Username})
	})
	NewHandler(svc).RegisterRoutes(r, protected)
	return r
}

func doJSON(r *gin.Engine, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/user/register", `{"username":"maria","password":"s3cret"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user registered successfully", body["message"])
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func TestRegisterHandler(t *testing.T) {
	r := newTestRouter(t)
	register(t, r)

	w := doJSON(r, http.MethodPost, "/user/register", `{"username":"maria","password":"other"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"username is already taken","code":"CONFLICT"}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/user/register", `{"username":"joao"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"username and password are required","code":"VALIDATION_ERROR"}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/user/register", `not json`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestObtainTokenHandler(t *testing.T) {
	r := newTestRouter(t)
	register(t, r)

	w := doJSON(r, http.MethodPost, "/user/obtain-token", `{"username":"maria","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	w = doJSON(r, http.MethodPost, "/user/obtain-token", `{"username":"maria","password":"nope"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"unable to log in with provided credentials","code":"VALIDATION_ERROR"}`, w.Body.String())
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestRouter(t)
	token := register(t, r)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "token scheme", header: "Token " + token, want: http.StatusOK},
		{name: "bearer scheme", header: "Bearer " + token, want: http.StatusOK},
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "unknown scheme", header: "Basic " + token, want: http.StatusUnauthorized},
		{name: "unknown token", header: "Token deadbeef", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, "/whoami", "", tt.header)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"username":"maria"}`, w.Body.String())
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	r := newTestRouter(t)
	token := register(t, r)

	w := doJSON(r, http.MethodPost, "/user/logout", "", "Token "+token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/whoami", "", "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
