package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnflex/internal/pkg/apperr"
	"fitnflex/internal/pkg/jwt"
)

type stubResolver struct {
	roles map[string]string
	calls int
	err   error
}

func (s *stubResolver) EffectiveRole(_ context.Context, email string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	role, ok := s.roles[email]
	if !ok {
		return "", apperr.ErrNotFound
	}
	return role, nil
}

func setup(t *testing.T, resolver *stubResolver) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := jwt.New("test-secret-123", time.Hour)
	g := NewGuards(tokens, resolver)

	r := gin.New()
	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CurrentEmail(c)})
	}
	r.GET("/protected", g.RequireAuth(), ok)
	r.GET("/users/:email", g.RequireSelf("email"), ok)
	r.GET("/admin", g.AdminOnly(), ok)
	r.GET("/trainer", g.TrainerOnly(), ok)
	r.GET("/staff", g.RequireRole("trainer", "admin"), ok)
	return r, tokens
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticated_ValidToken(t *testing.T) {
	r, tokens := setup(t, &stubResolver{})
	token, err := tokens.GenerateToken("Jane@Example.com")
	require.NoError(t, err)

	w := do(r, "/protected", token)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "jane@example.com", body["email"])
}

func TestAuthenticated_Rejects(t *testing.T) {
	r, _ := setup(t, &stubResolver{})
	other := jwt.New("another-secret", time.Hour)
	foreign, err := other.GenerateToken("jane@example.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + foreign},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"UNAUTHORIZED"`)
		})
	}
}

func TestSelf(t *testing.T) {
	r, tokens := setup(t, &stubResolver{})
	token, _ := tokens.GenerateToken("jane@example.com")

	assert.Equal(t, http.StatusOK, do(r, "/users/jane@example.com", token).Code)
	assert.Equal(t, http.StatusOK, do(r, "/users/JANE@example.com", token).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/users/bob@example.com", token).Code)
	// query string is never consulted
	assert.Equal(t, http.StatusForbidden, do(r, "/users/bob@example.com?email=jane@example.com", token).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/users/jane@example.com", "").Code)
}

func TestRole_ReadsStoredRole(t *testing.T) {
	resolver := &stubResolver{roles: map[string]string{
		"admin@example.com":   "admin",
		"member@example.com":  "member",
		"trainer@example.com": "trainer",
	}}
	r, tokens := setup(t, resolver)
	admin, _ := tokens.GenerateToken("admin@example.com")
	member, _ := tokens.GenerateToken("member@example.com")
	trainer, _ := tokens.GenerateToken("trainer@example.com")
	ghost, _ := tokens.GenerateToken("ghost@example.com")

	assert.Equal(t, http.StatusOK, do(r, "/admin", admin).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", member).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", trainer).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", ghost).Code)
	assert.Equal(t, http.StatusOK, do(r, "/trainer", trainer).Code)
	assert.Equal(t, http.StatusOK, do(r, "/staff", admin).Code)
	assert.Equal(t, http.StatusOK, do(r, "/staff", trainer).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/staff", member).Code)

	// demotion takes effect without a new token
	resolver.roles["admin@example.com"] = "member"
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", admin).Code)
}

func TestRole_StoreErrorIsInternal(t *testing.T) {
	r, tokens := setup(t, &stubResolver{err: errors.New("connection reset")})
	token, _ := tokens.GenerateToken("admin@example.com")

	w := do(r, "/admin", token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection reset")
}

func TestChain_ShortCircuits(t *testing.T) {
	resolver := &stubResolver{roles: map[string]string{"admin@example.com": "admin"}}
	r, _ := setup(t, resolver)

	w := do(r, "/admin", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, resolver.calls)
}

func TestChain_HandlerNotReachedOnFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reached := false
	deny := func(*gin.Context) error { return apperr.ErrForbidden }
	never := func(*gin.Context) error {
		t.Fatal("second guard must not run")
		return nil
	}

	r := gin.New()
	r.GET("/x", Chain(deny, never), func(c *gin.Context) { reached = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)
}
