// Package residentsdk is the Go client for the iresident HTTP API.
//
// The wire types in this package are shared with the server so both ends
// agree on field names and date formats. JSON field names follow the
// established Spanish wire format (nombre, fecha_ingreso, canjeada, ...).
//
// Basic usage:
//
//	client := residentsdk.NewClient("http://localhost:8080")
//
//	code, err := client.IssueInvitation(ctx, residentsdk.IssueInvitationRequest{
//		UserID:    residentsdk.ID(7),
//		VisitorID: residentsdk.ID(3),
//	})
//
//	inv, err := client.RedeemInvitation(ctx, code)
//	var apiErr *residentsdk.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
//		// already redeemed
//	}
package residentsdk
