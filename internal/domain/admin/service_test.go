package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnflex/internal/domain/payment"
	"fitnflex/internal/domain/subscription"
	"fitnflex/internal/domain/user"
	"fitnflex/internal/middleware"
	"fitnflex/internal/pkg/dbtest"
	"fitnflex/internal/pkg/jwt"
)

type fixture struct {
	users    *user.Service
	userRepo *user.GormRepository
	payments *payment.Service
	subs     *subscription.Service
	svc      *Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	ctx := context.Background()

	userRepo := user.NewGormRepository(db)
	require.NoError(t, userRepo.Migrate(ctx))
	payRepo := payment.NewGormRepository(db)
	require.NoError(t, payRepo.Migrate(ctx))
	subRepo := subscription.NewGormRepository(db)
	require.NoError(t, subRepo.Migrate(ctx))

	f := &fixture{
		users:    user.NewService(userRepo),
		userRepo: userRepo,
		payments: payment.NewService(payRepo, payment.NewIntentProvider(""), "usd"),
		subs:     subscription.NewService(subRepo),
	}
	f.svc = NewService(f.users, f.payments, f.subs)
	return f
}

func (f *fixture) register(t *testing.T, email string) *user.User {
	t.Helper()
	u := &user.User{Email: email, Name: strings.Split(email, "@")[0]}
	created, err := f.users.Register(context.Background(), u)
	require.NoError(t, err)
	require.True(t, created)
	return u
}

func (f *fixture) promote(t *testing.T, id string, role user.Role) {
	t.Helper()
	require.NoError(t, f.userRepo.UpdateStatus(context.Background(), id, user.StatusChange{Role: &role}))
}

func TestApplicationLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	applicant := f.register(t, "leo@example.com")
	_, err := f.users.ApplyAsTrainer(ctx, "leo@example.com", user.Profile{Skills: []string{"Yoga"}})
	require.NoError(t, err)

	apps, err := f.svc.Applications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	require.NoError(t, f.svc.Resolve(ctx, applicant.ID))
	got, err := f.users.GetByEmail(ctx, "leo@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleTrainer, got.EffectiveRole())

	trainers, err := f.svc.Trainers(ctx)
	require.NoError(t, err)
	assert.Len(t, trainers, 1)

	require.NoError(t, f.svc.Demote(ctx, applicant.ID))
	got, err = f.users.GetByEmail(ctx, "leo@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleMember, got.Role)

	assert.Error(t, f.svc.Resolve(ctx, "00000000-0000-0000-0000-000000000000"))
}

func TestReject_StoresFeedback(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	applicant := f.register(t, "ivy@example.com")
	_, err := f.users.ApplyAsTrainer(ctx, "ivy@example.com", user.Profile{Skills: []string{"Boxing"}})
	require.NoError(t, err)

	require.NoError(t, f.svc.Reject(ctx, applicant.ID, "  more experience needed "))
	got, err := f.svc.Application(ctx, applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, user.StatusRejected, got.Status)
	assert.Equal(t, "more experience needed", got.Feedback)
}

func TestBalance(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for i, email := range []string{"mia@example.com", "mia@example.com", "leo@example.com"} {
		require.NoError(t, f.payments.Record(ctx, &payment.Payment{
			User:          payment.Payer{Name: "x", Email: email},
			Class:         payment.ClassRef{ClassName: "Yoga"},
			Price:         10,
			TransactionID: "pi_" + string(rune('a'+i)),
			Date:          time.Now().UTC(),
		}))
	}
	_, _, err := f.subs.Subscribe(ctx, "Mia", "mia@example.com")
	require.NoError(t, err)

	b, err := f.svc.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30.0, b.Info.TotalBalance)
	assert.Equal(t, 2, b.Info.PaidMembers)
	assert.Len(t, b.Info.Transactions, 3)
	assert.Equal(t, int64(1), b.Subscribers)
	require.Len(t, b.ChartData, 3)
	assert.Equal(t, []any{"Paid Members", 2}, b.ChartData[1])
}

func TestHandler_AdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := setup(t)

	admin := f.register(t, "boss@example.com")
	f.promote(t, admin.ID, user.RoleAdmin)
	member := f.register(t, "mia@example.com")

	tokens := jwt.New("test-secret", time.Hour)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(f.svc), middleware.NewGuards(tokens, f.users))

	do := func(method, path, body, email string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if email != "" {
			tok, _ := tokens.GenerateToken(email)
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/v1/admin/users", "", "").Code)
	assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/v1/admin/users", "", "mia@example.com").Code)
	assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/v1/admin/users", "", "ghost@example.com").Code)

	w := do(http.MethodGet, "/api/v1/admin/users", "", "boss@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)

	w = do(http.MethodPut, "/api/v1/admin/users/"+member.ID+"/reject", `{"feedback":"no"}`, "boss@example.com")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/v1/admin/balance?email=mia@example.com", "", "boss@example.com").Code)
	w = do(http.MethodGet, "/api/v1/admin/balance", "", "boss@example.com")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"chartData":[["users","count"],["Paid Members",0],["Newsletter Subscribers",0]]`)
}
