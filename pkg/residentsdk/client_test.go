package residentsdk_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	residenthttp "github.com/aussiebroadwan/iresident/internal/resident/http"
	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/internal/resident/store/drivers/sqlite"
	"github.com/aussiebroadwan/iresident/pkg/events"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *residentsdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	r := residenthttp.NewRouter("sdk-test", st, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.RolesService = &service.RolesService{Store: st}
	r.UsersService = &service.UsersService{Store: st}
	r.VisitorsService = &service.VisitorsService{Store: st}
	r.VehiclesService = &service.VehiclesService{Store: st}
	r.InvitationsService = &service.InvitationsService{Store: st, Events: events.Nop{}}
	open := httpx.RateLimitConfig{RequestsPerWindow: 100000, Window: time.Second, Burst: 100000}
	r.Limits = residenthttp.Limits{Strict: open, Write: open, Read: open}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return residentsdk.NewClient(srv.URL + "/")
}

func TestClientRoles(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	role, err := c.CreateRole(ctx, residentsdk.RoleRequest{Name: residentsdk.String("guardia")})
	require.NoError(t, err)
	require.NotZero(t, role.ID)

	role, err = c.UpdateRole(ctx, role.ID, residentsdk.RoleRequest{Name: residentsdk.String("vigilante")})
	require.NoError(t, err)
	require.Equal(t, "vigilante", role.Name)

	_, err = c.CreateRole(ctx, residentsdk.RoleRequest{Name: residentsdk.String("admin")})
	require.NoError(t, err)

	roles, err := c.ListRoles(ctx, &residentsdk.ListOptions{Offset: ptr(1), Limit: ptr(5)})
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, "admin", roles[0].Name)

	deleted, err := c.DeleteRole(ctx, role.ID)
	require.NoError(t, err)
	require.Equal(t, role.ID, deleted.ID)

	_, err = c.GetRole(ctx, role.ID)
	require.True(t, residentsdk.IsNotFound(err))
}

func TestClientUsersVehiclesVisitors(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	join := residentsdk.NewDate(2023, time.June, 1)
	user, err := c.CreateUser(ctx, residentsdk.UserRequest{
		Name:     residentsdk.String("Ana"),
		Email:    residentsdk.String("ana@example.com"),
		JoinDate: &join,
	})
	require.NoError(t, err)
	require.Equal(t, "2023-06-01", user.JoinDate.Format(time.DateOnly))

	car, err := c.CreateVehicle(ctx, residentsdk.VehicleRequest{
		Plate:  residentsdk.String("XYZ-987"),
		UserID: residentsdk.SetID(user.ID),
	})
	require.NoError(t, err)

	got, err := c.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Vehicles, 1)
	require.Equal(t, car.ID, got.Vehicles[0].ID)

	logged, err := c.Login(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, logged.ID)

	car, err = c.UpdateVehicle(ctx, car.ID, residentsdk.VehicleRequest{UserID: residentsdk.ClearID()})
	require.NoError(t, err)
	require.Nil(t, car.UserID)
	require.Equal(t, "XYZ-987", car.Plate)

	visitor, err := c.CreateVisitor(ctx, residentsdk.VisitorRequest{
		Name:   residentsdk.String("Beto"),
		UserID: residentsdk.SetID(user.ID),
	})
	require.NoError(t, err)
	require.True(t, visitor.VisitDate.IsZero())

	visitors, err := c.ListVisitors(ctx, nil)
	require.NoError(t, err)
	require.Len(t, visitors, 1)

	_, err = c.DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	// References are nulled when the user goes away.
	visitor, err = c.GetVisitor(ctx, visitor.ID)
	require.NoError(t, err)
	require.Nil(t, visitor.UserID)

	vehicles, err := c.ListVehicles(ctx, nil)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	require.Nil(t, vehicles[0].UserID)

	_, err = c.DeleteVehicle(ctx, car.ID)
	require.NoError(t, err)
	_, err = c.DeleteVisitor(ctx, visitor.ID)
	require.NoError(t, err)

	users, err := c.ListUsers(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestClientInvitations(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	user, err := c.CreateUser(ctx, residentsdk.UserRequest{Name: residentsdk.String("Ana")})
	require.NoError(t, err)

	at := residentsdk.Timestamp{Time: time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)}
	code, err := c.IssueInvitation(ctx, residentsdk.IssueInvitationRequest{UserID: residentsdk.ID(user.ID), InvitedAt: &at})
	require.NoError(t, err)

	inv, err := c.GetInvitation(ctx, code)
	require.NoError(t, err)
	require.NotNil(t, inv)
	require.False(t, inv.Redeemed)
	require.True(t, at.Equal(inv.InvitedAt.Time))
	require.Equal(t, "Ana", inv.User.Name)

	inv, err = c.RedeemInvitation(ctx, code)
	require.NoError(t, err)
	require.True(t, inv.Redeemed)

	_, err = c.RedeemInvitation(ctx, code)
	var apiErr *residentsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, residentsdk.ErrorCodeAlreadyRedeemed, apiErr.Code)

	missing, err := c.GetInvitation(ctx, "does-not-exist")
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = c.RedeemInvitation(ctx, "does-not-exist")
	require.True(t, residentsdk.IsNotFound(err))
}

func TestClientHealth(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "sdk-test", live.Version)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)
}

func ptr[T any](v T) *T { return &v }
