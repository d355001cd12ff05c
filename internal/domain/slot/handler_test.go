package slot

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnflex/internal/domain/user"
	"fitnflex/internal/middleware"
	"fitnflex/internal/pkg/jwt"
)

func doRequest(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandler_TrainerGuards(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := setupTestService(t)
	ctx := context.Background()
	tokens := jwt.New("test-secret", time.Hour)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(f.svc), middleware.NewGuards(tokens, f.users))

	coach, _ := tokens.GenerateToken(f.trainer.Email)
	mia, _ := tokens.GenerateToken(f.member.Email)
	body := CreateSlotsRequest{Slots: []CreateSlotRequest{{SlotName: "AM", SlotTime: "1h", Days: []string{"Mon"}, ClassName: "Yoga"}}}

	// not yet a resolved trainer
	_, err := f.users.ApplyAsTrainer(ctx, f.trainer.Email, user.Profile{Skills: []string{"Yoga"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodPost, "/api/v1/slots", body, coach).Code)

	require.NoError(t, f.users.Resolve(ctx, f.trainer.ID))
	rr := doRequest(r, http.MethodPost, "/api/v1/slots", body, coach)
	require.Equal(t, http.StatusCreated, rr.Code)

	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodPost, "/api/v1/slots", body, mia).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, http.MethodPost, "/api/v1/slots", CreateSlotsRequest{}, coach).Code)

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/api/v1/slots/trainer/coach@example.com", nil, coach).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodGet, "/api/v1/slots/trainer/other@example.com", nil, coach).Code)

	rr = doRequest(r, http.MethodGet, "/api/v1/trainers/"+f.trainer.ID+"/slots", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var env struct {
		Data []Slot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodDelete, "/api/v1/slots/missing", nil, coach).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodDelete, "/api/v1/slots/"+env.Data[0].ID, nil, coach).Code)
}
