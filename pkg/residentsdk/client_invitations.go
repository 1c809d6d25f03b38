package residentsdk

import (
	"context"
	"net/http"
	"net/url"
)

// IssueInvitation creates an invitation and returns its code.
func (c *Client) IssueInvitation(ctx context.Context, req IssueInvitationRequest) (string, error) {
	var out IssueInvitationResponse
	if err := c.do(ctx, http.MethodPost, "/invitacion/", req, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.Code, nil
}

// RedeemInvitation marks the invitation as used. A second redemption fails
// with an *APIError carrying ErrorCodeAlreadyRedeemed.
func (c *Client) RedeemInvitation(ctx context.Context, code string) (*Invitation, error) {
	var inv Invitation
	err := c.do(ctx, http.MethodPost, "/invitacion/redeem/", RedeemInvitationRequest{Code: code}, &inv, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetInvitation looks an invitation up by code. An unknown code yields
// (nil, nil); the server answers 200 with a null body.
func (c *Client) GetInvitation(ctx context.Context, code string) (*Invitation, error) {
	var inv *Invitation
	if err := c.do(ctx, http.MethodGet, "/invitation/"+url.PathEscape(code), nil, &inv, http.StatusOK); err != nil {
		return nil, err
	}
	return inv, nil
}
