package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnflex/internal/pkg/apperr"
	"fitnflex/internal/pkg/dbtest"
)

func setupTestService(t *testing.T) (*Service, *GormRepository) {
	t.Helper()
	repo := NewGormRepository(dbtest.Open(t))
	require.NoError(t, repo.Migrate(context.Background()))
	return NewService(repo), repo
}

func TestRegister_Idempotent(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	first := &User{Email: "Jane@Example.com", Name: "Jane"}
	created, err := svc.Register(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, RoleMember, first.Role)

	second := &User{Email: "jane@example.com", Name: "Impostor"}
	created, err = svc.Register(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, second.ID)

	all, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Jane", all[0].Name)
}

func TestRegister_IgnoresRequestedRole(t *testing.T) {
	svc, _ := setupTestService(t)
	u := &User{Email: "sneaky@example.com", Role: RoleAdmin, Status: StatusResolved}

	_, err := svc.Register(context.Background(), u)
	require.NoError(t, err)

	got, err := svc.GetByEmail(context.Background(), "sneaky@example.com")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, got.Role)
	assert.Equal(t, StatusNone, got.Status)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, _ := setupTestService(t)
	_, err := svc.Register(context.Background(), &User{Email: "nope"})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestUpdateProfile_Outcomes(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	res, err := svc.UpdateProfile(ctx, "new@example.com", Profile{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, UpsertCreated, res)

	res, err = svc.UpdateProfile(ctx, "new@example.com", Profile{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, UpsertUnchanged, res)

	res, err = svc.UpdateProfile(ctx, "new@example.com", Profile{Age: 30, Skills: []string{"Yoga"}})
	require.NoError(t, err)
	assert.Equal(t, UpsertUpdated, res)

	got, err := svc.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, []string{"Yoga"}, got.Skills)
	assert.Equal(t, RoleMember, got.Role)
}

func TestUpdateProfile_CannotSetStatus(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "m@example.com", Profile{Name: "M", Status: StatusResolved})
	require.NoError(t, err)

	got, err := svc.GetByEmail(ctx, "m@example.com")
	require.NoError(t, err)
	assert.Equal(t, StatusNone, got.Status)
}

func TestApplicationLifecycle(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	u := &User{Email: "coach@example.com", Name: "Coach"}
	_, err := svc.Register(ctx, u)
	require.NoError(t, err)

	_, err = svc.ApplyAsTrainer(ctx, u.Email, Profile{})
	assert.ErrorIs(t, err, ErrSkillsMissing)

	_, err = svc.ApplyAsTrainer(ctx, u.Email, Profile{
		Skills:        []string{"Yoga", "Pilates"},
		AvailableDays: []string{"Mon", "Wed"},
		AvailableTime: "08:00",
	})
	require.NoError(t, err)

	pending, err := svc.PendingApplications(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, u.ID, pending[0].ID)

	role, err := svc.EffectiveRole(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, string(RoleMember), role)

	require.NoError(t, svc.Resolve(ctx, u.ID))

	role, err = svc.EffectiveRole(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, string(RoleTrainer), role)

	isTrainer, err := svc.HasRole(ctx, u.Email, RoleTrainer)
	require.NoError(t, err)
	assert.True(t, isTrainer)

	team, err := svc.Team(ctx)
	require.NoError(t, err)
	assert.Len(t, team, 1)

	require.NoError(t, svc.Demote(ctx, u.ID))
	isMember, err := svc.HasRole(ctx, u.Email, RoleMember)
	require.NoError(t, err)
	assert.True(t, isMember)

	_, err = svc.Trainer(ctx, u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReject_StoresFeedback(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	u := &User{Email: "hopeful@example.com"}
	_, err := svc.Register(ctx, u)
	require.NoError(t, err)
	_, err = svc.ApplyAsTrainer(ctx, u.Email, Profile{Skills: []string{"Boxing"}})
	require.NoError(t, err)

	require.NoError(t, svc.Reject(ctx, u.ID, "  needs certification  "))

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, got.Status)
	assert.Equal(t, "needs certification", got.Feedback)
	assert.Equal(t, RoleMember, got.EffectiveRole())
}

func TestTransitions_UnknownUser(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Resolve(ctx, "missing"), ErrUserNotFound)
	assert.ErrorIs(t, svc.Reject(ctx, "missing", "x"), ErrUserNotFound)
	assert.ErrorIs(t, svc.Demote(ctx, "missing"), apperr.ErrNotFound)
}

func TestHasRole_UnknownUserIsFalse(t *testing.T) {
	svc, _ := setupTestService(t)
	ok, err := svc.HasRole(context.Background(), "ghost@example.com", RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.EffectiveRole(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestEffectiveRole(t *testing.T) {
	cases := []struct {
		name string
		user User
		want Role
	}{
		{"member", User{Role: RoleMember}, RoleMember},
		{"admin", User{Role: RoleAdmin}, RoleAdmin},
		{"resolved trainer", User{Role: RoleTrainer, Status: StatusResolved}, RoleTrainer},
		{"pending trainer", User{Role: RoleTrainer, Status: StatusPending}, RoleMember},
		{"rejected trainer", User{Role: RoleTrainer, Status: StatusRejected}, RoleMember},
		{"empty role", User{}, RoleMember},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.EffectiveRole())
		})
	}
}
