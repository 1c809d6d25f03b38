package resident_test

import (
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
	"github.com/stretchr/testify/require"
)

// TestInvitationFlow walks the full visitor pass lifecycle:
// 1. Register a resident with a vehicle and a visitor
// 2. Issue an invitation for the visitor
// 3. Look it up and check the resident details are attached
// 4. Redeem it once, then check the second redemption is refused
func TestInvitationFlow(t *testing.T) {
	client := setupResidentContainer(t, relaxedLimits)
	ctx := t.Context()

	joined := residentsdk.NewDate(2024, time.January, 15)
	resident, err := client.CreateUser(ctx, residentsdk.UserRequest{
		Name:     residentsdk.String("Ana Torres"),
		Address:  residentsdk.String("Casa 12"),
		Email:    residentsdk.String("ana@example.com"),
		JoinDate: &joined,
	})
	require.NoError(t, err)

	_, err = client.CreateVehicle(ctx, residentsdk.VehicleRequest{
		Plate:  residentsdk.String("ABC-123"),
		UserID: residentsdk.SetID(resident.ID),
	})
	require.NoError(t, err)

	visitor, err := client.CreateVisitor(ctx, residentsdk.VisitorRequest{
		Name:   residentsdk.String("Beto"),
		UserID: residentsdk.SetID(resident.ID),
	})
	require.NoError(t, err)

	code, err := client.IssueInvitation(ctx, residentsdk.IssueInvitationRequest{
		UserID:    residentsdk.ID(resident.ID),
		VisitorID: residentsdk.ID(visitor.ID),
	})
	require.NoError(t, err)
	t.Logf("Issued invitation %s", code)

	inv, err := client.GetInvitation(ctx, code)
	require.NoError(t, err)
	require.NotNil(t, inv)
	require.False(t, inv.Redeemed)
	require.Equal(t, resident.ID, inv.User.ID)
	require.Len(t, inv.User.Vehicles, 1)

	redeemed, err := client.RedeemInvitation(ctx, code)
	require.NoError(t, err)
	require.True(t, redeemed.Redeemed)

	_, err = client.RedeemInvitation(ctx, code)
	assertAPIError(t, err, http.StatusBadRequest, residentsdk.ErrorCodeAlreadyRedeemed)

	logged, err := client.Login(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Equal(t, resident.ID, logged.ID)
}

// TestConcurrentRedemption fires parallel redemptions at one code against
// the file-backed database and expects exactly one to win.
func TestConcurrentRedemption(t *testing.T) {
	client := setupResidentContainer(t, relaxedLimits)
	ctx := t.Context()

	code, err := client.IssueInvitation(ctx, residentsdk.IssueInvitationRequest{})
	require.NoError(t, err)

	const n = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		already int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.RedeemInvitation(ctx, code)

			var apiErr *residentsdk.APIError
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.As(err, &apiErr) && apiErr.Code == residentsdk.ErrorCodeAlreadyRedeemed:
				already++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, n-1, already)
}

// TestMissingRecords verifies absent ids and codes surface as 404s, except
// the invitation lookup which answers null.
func TestMissingRecords(t *testing.T) {
	client := setupResidentContainer(t, relaxedLimits)
	ctx := t.Context()

	_, err := client.GetUser(ctx, 999)
	assertAPIError(t, err, http.StatusNotFound, residentsdk.ErrorCodeNotFound)
	require.Contains(t, err.Error(), "User not found")

	_, err = client.RedeemInvitation(ctx, "missing")
	assertAPIError(t, err, http.StatusNotFound, residentsdk.ErrorCodeNotFound)

	inv, err := client.GetInvitation(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, inv)
}
