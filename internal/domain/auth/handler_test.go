package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnflex/internal/pkg/jwt"
)

func TestIssueToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := jwt.New("test-secret", time.Hour)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(tokens))

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusBadRequest, post(`{`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"email":"not-an-email"}`).Code)

	w := post(`{"email":" Mia@Example.com "}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	claims, err := tokens.ValidateToken(body.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "mia@example.com", claims.Email)
}
