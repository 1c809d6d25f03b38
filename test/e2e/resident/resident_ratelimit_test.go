package resident_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies the login endpoint uses the strict profile.
// With the default of 10 requests per minute the 11th call is refused.
func TestRateLimitLogin(t *testing.T) {
	client := setupResidentContainer(t, nil)
	ctx := t.Context()

	for i := range 10 {
		_, err := client.Login(ctx, "nobody@example.com")
		assertAPIError(t, err, http.StatusNotFound, residentsdk.ErrorCodeNotFound)
		t.Logf("login attempt %d refused as unknown", i+1)
	}

	_, err := client.Login(ctx, "nobody@example.com")
	assertAPIError(t, err, http.StatusTooManyRequests, residentsdk.ErrorCodeRateLimited)
}

// TestRateLimitIsPerEndpointClass verifies reads keep working after the
// strict bucket is exhausted.
func TestRateLimitIsPerEndpointClass(t *testing.T) {
	client := setupResidentContainer(t, map[string]string{"RATE_LIMIT_STRICT_PER_MINUTE": "1"})
	ctx := t.Context()

	_, err := client.RedeemInvitation(ctx, "missing")
	assertAPIError(t, err, http.StatusNotFound, residentsdk.ErrorCodeNotFound)

	_, err = client.RedeemInvitation(ctx, "missing")
	assertAPIError(t, err, http.StatusTooManyRequests, residentsdk.ErrorCodeRateLimited)

	roles, err := client.ListRoles(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, roles)
}
