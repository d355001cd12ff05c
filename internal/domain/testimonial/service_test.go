package testimonial

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnflex/internal/pkg/dbtest"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	repo := NewGormRepository(dbtest.Open(t))
	require.NoError(t, repo.Migrate(context.Background()))
	return NewService(repo)
}

func TestCreateAndList(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.Create(ctx, &Testimonial{Name: " Ana ", Rating: 5, Review: "Great coaches", CreatedAt: base}))
	require.NoError(t, svc.Create(ctx, &Testimonial{Name: "Ben", Rating: 4.5, Review: "Clean gym", CreatedAt: base.Add(time.Hour)}))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ana", items[0].Name)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, 4.5, items[1].Rating)
}

func TestCreate_Validation(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Create(ctx, &Testimonial{Rating: 3}), ErrNameRequired)
	assert.ErrorIs(t, svc.Create(ctx, &Testimonial{Name: "Cy", Rating: 6}), ErrInvalidRating)
}

func TestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := setupTestService(t)
	require.NoError(t, svc.Create(context.Background(), &Testimonial{Name: "Ana", Rating: 5, Review: "Great"}))

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/testimonials", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ana"`)
}
