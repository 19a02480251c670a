package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, r *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ClientSecret = "test-secret"

	r := gin.New()
	r.POST("/api/login", Login)

	w := postLogin(t, r, map[string]string{
		"client_id":     "wallet-ui",
		"client_secret": "test-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "wallet-ui", resp.ClientID)
}

func TestLogin_WrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ClientSecret = "test-secret"

	r := gin.New()
	r.POST("/api/login", Login)

	w := postLogin(t, r, map[string]string{
		"client_id":     "wallet-ui",
		"client_secret": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ClientSecret = "test-secret"

	r := gin.New()
	r.POST("/api/login", Login)

	w := postLogin(t, r, map[string]string{"client_id": "wallet-ui"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
