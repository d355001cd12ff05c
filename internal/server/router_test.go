package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnflex/internal/database"
	"fitnflex/internal/domain/payment"
	"fitnflex/internal/domain/user"
	"fitnflex/internal/pkg/dbtest"
	"fitnflex/internal/pkg/jwt"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type suite struct {
	t      *testing.T
	router *gin.Engine
	store  *database.Store
	svc    *Services
	tokens *jwt.Service
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewGormStore(dbtest.Open(t))
	require.NoError(t, store.Prepare(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwt.New("test-secret", time.Hour)
	svc := NewServices(store, payment.NewIntentProvider(""), "usd", logger)

	return &suite{
		t:      t,
		router: NewRouter(Options{Store: store, Services: svc, Tokens: tokens, Logger: logger}),
		store:  store,
		svc:    svc,
		tokens: tokens,
	}
}

func (s *suite) do(method, path string, body any, email string) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		tok, err := s.tokens.GenerateToken(email)
		require.NoError(s.t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && bytes.HasPrefix(w.Body.Bytes(), []byte("{")) {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *suite) makeAdmin(email string) {
	s.t.Helper()
	ctx := context.Background()
	_, err := s.svc.Users.Register(ctx, &user.User{Email: email, Name: "Admin"})
	require.NoError(s.t, err)
	u, err := s.svc.Users.GetByEmail(ctx, email)
	require.NoError(s.t, err)
	role := user.RoleAdmin
	require.NoError(s.t, s.store.Users.UpdateStatus(ctx, u.ID, user.StatusChange{Role: &role}))
}

func TestBannerHealthAndMetrics(t *testing.T) {
	s := newSuite(t)

	w, _ := s.do(http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, banner, w.Body.String())

	w, env := s.do(http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, _ = s.do(http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fitnflex_http_requests_total")
}

func TestMemberJourney(t *testing.T) {
	s := newSuite(t)
	s.makeAdmin("boss@example.com")

	// token
	w, env := s.do(http.MethodPost, "/api/v1/auth/token", map[string]string{"email": "leo@example.com"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "token")

	// trainer applies and gets resolved
	w, _ = s.do(http.MethodPost, "/api/v1/users", map[string]string{"email": "leo@example.com", "name": "Leo"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = s.do(http.MethodPost, "/api/v1/users/leo@example.com/trainer-application",
		map[string]any{"skills": []string{"Yoga"}, "availableDays": []string{"Mon"}}, "leo@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	leo, err := s.svc.Users.GetByEmail(context.Background(), "leo@example.com")
	require.NoError(t, err)
	w, _ = s.do(http.MethodPut, "/api/v1/admin/users/"+leo.ID+"/resolve", nil, "leo@example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = s.do(http.MethodPut, "/api/v1/admin/users/"+leo.ID+"/resolve", nil, "boss@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	// admin creates the class, trainer opens a slot
	w, _ = s.do(http.MethodPost, "/api/v1/classes", map[string]string{"name": "Yoga"}, "boss@example.com")
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = s.do(http.MethodPost, "/api/v1/slots", map[string]any{
		"slots": []map[string]any{{"slotName": "Morning", "slotTime": "1 hour", "days": []string{"Mon"}, "className": "Yoga"}},
	}, "leo@example.com")
	require.Equal(t, http.StatusCreated, w.Code)
	var slots []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &slots))
	require.Len(t, slots, 1)

	// member registers and books
	w, _ = s.do(http.MethodPost, "/api/v1/users", map[string]string{"email": "mia@example.com", "name": "Mia"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/payments", map[string]any{
		"user":  map[string]string{"name": "Mia", "email": "mia@example.com"},
		"class": map[string]string{"className": "Yoga", "slotId": slots[0].ID},
		"price": 25,
	}, "mia@example.com")
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.do(http.MethodPost, "/api/v1/payments", map[string]any{
		"class": map[string]string{"className": "Yoga", "slotId": slots[0].ID},
		"price": 25,
	}, "mia@example.com")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(http.MethodGet, "/api/v1/users/mia@example.com/bookings", nil, "mia@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &bookings))
	assert.Len(t, bookings, 1)

	w, _ = s.do(http.MethodGet, "/api/v1/users/mia@example.com/bookings", nil, "leo@example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// the trainer can see who booked
	w, _ = s.do(http.MethodGet, "/api/v1/slots/members/mia@example.com", nil, "leo@example.com")
	assert.Equal(t, http.StatusOK, w.Code)

	// featured reflects the booking
	w, env = s.do(http.MethodGet, "/api/v1/classes/featured", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"totalBooking":1`)

	// blog and vote
	w, env = s.do(http.MethodPost, "/api/v1/blogs", map[string]string{"title": "Breathing"}, "leo@example.com")
	require.Equal(t, http.StatusCreated, w.Code)
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))

	w, _ = s.do(http.MethodPost, "/api/v1/blogs", map[string]string{"title": "Nope"}, "mia@example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)

	for i := 0; i < 2; i++ {
		w, _ = s.do(http.MethodPatch, "/api/v1/blogs/"+post.ID+"/vote", map[string]string{"vote": "like"}, "mia@example.com")
		require.Equal(t, http.StatusOK, w.Code)
	}
	w, env = s.do(http.MethodGet, "/api/v1/forum/"+post.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"likes":1`)

	// dashboard
	w, env = s.do(http.MethodGet, "/api/v1/admin/balance", nil, "boss@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"totalBalance":25`)
}
