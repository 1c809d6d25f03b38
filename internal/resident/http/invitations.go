package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
)

const invitationNotFound = "Invitation not found"

// InvitationsHandler handles issuing, redeeming and looking up visitor passes.
type InvitationsHandler struct {
	InvitationsService *service.InvitationsService
}

// HandleIssue handles POST /invitacion/
//
//	@Summary		Issue Invitation
//	@Description	Creates an unredeemed invitation and returns its code (a random UUID).
//	@Description	fecha_invitacion defaults to the current time. Responds 201 Created (not 200).
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		residentsdk.IssueInvitationRequest	true	"Inviting user and visitor"
//	@Success		201		{object}	residentsdk.IssueInvitationResponse
//	@Failure		400		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/invitacion/ [post].
func (h *InvitationsHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var req residentsdk.IssueInvitationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var invitedAt time.Time
	if req.InvitedAt != nil {
		invitedAt = req.InvitedAt.Time
	}

	code, err := h.InvitationsService.Issue(r.Context(), service.IssueInvitation{
		UserID:    req.UserID,
		VisitorID: req.VisitorID,
		InvitedAt: invitedAt,
	})
	if err != nil {
		writeServiceError(w, r, err, invitationNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, residentsdk.IssueInvitationResponse{Code: code})
}

// HandleRedeem handles POST /invitacion/redeem/
//
//	@Summary		Redeem Invitation
//	@Description	Marks the invitation as used. Exactly one request per code succeeds.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		residentsdk.RedeemInvitationRequest	true	"Invitation code"
//	@Success		200		{object}	residentsdk.Invitation
//	@Failure		400		{object}	residentsdk.ErrorResponse	"already_redeemed or invalid_request"
//	@Failure		404		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	residentsdk.ErrorResponse	"error, error_description"
//	@Router			/invitacion/redeem/ [post].
func (h *InvitationsHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	var req residentsdk.RedeemInvitationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeBadRequest(w, "code is required")
		return
	}

	inv, err := h.InvitationsService.Redeem(r.Context(), req.Code)
	if err != nil {
		writeServiceError(w, r, err, invitationNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitation(inv))
}

// HandleLookup handles GET /invitation/{code}
//
//	@Summary		Get Invitation
//	@Description	Returns the invitation with its inviting user. An unknown code yields 200 with a null body.
//	@Tags			Invitations
//	@Produce		json
//	@Param			code	path		string	true	"Invitation code"
//	@Success		200		{object}	residentsdk.Invitation
//	@Router			/invitation/{code} [get].
func (h *InvitationsHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InvitationsService.Lookup(r.Context(), r.PathValue("code"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusOK, nil)
			return
		}
		writeServiceError(w, r, err, invitationNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvitation(inv))
}
