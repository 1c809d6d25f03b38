package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/store"
	"github.com/aussiebroadwan/iresident/pkg/events"
	"github.com/aussiebroadwan/iresident/pkg/slogx"
	"github.com/google/uuid"
)

// IssueInvitation describes a pass a resident hands to a visitor.
type IssueInvitation struct {
	UserID    *int64
	VisitorID *int64
	InvitedAt time.Time // zero means now
}

type InvitationsService struct {
	Store  store.Store
	Events events.Publisher // nil disables publishing
}

// Issue stores a fresh unredeemed invitation and returns its code.
func (s *InvitationsService) Issue(ctx context.Context, req IssueInvitation) (string, error) {
	log := slogx.FromContext(ctx)

	invitedAt := req.InvitedAt
	if invitedAt.IsZero() {
		invitedAt = time.Now()
	}

	inv := domain.Invitation{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		VisitorID: req.VisitorID,
		InvitedAt: invitedAt.UTC(),
		Redeemed:  false,
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrReference) {
			log.Warn("invitation issued for unknown user or visitor",
				slog.Any("user_id", req.UserID),
				slog.Any("visitor_id", req.VisitorID),
			)
		} else {
			log.Error("failed to create invitation", slog.Any("error", err))
		}
		return "", wrap("issue invitation", err)
	}

	log.Info("invitation issued",
		slog.String("code", inv.ID),
		slog.Any("user_id", inv.UserID),
		slog.Any("visitor_id", inv.VisitorID),
	)
	s.publish(ctx, events.InvitationIssued, inv, inv.InvitedAt)

	return inv.ID, nil
}

// Redeem marks the invitation as used. Only one caller per code ever
// succeeds; the rest see ErrAlreadyRedeemed.
func (s *InvitationsService) Redeem(ctx context.Context, code string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	inv, won, err := s.Store.Invitations().MarkInvitationRedeemed(ctx, code)
	if err != nil {
		log.Error("failed to redeem invitation", slog.String("code", code), slog.Any("error", err))
		return domain.Invitation{}, wrap("redeem invitation", err)
	}

	if !won {
		// Zero rows: either the code is unknown or someone got there first.
		if _, err := s.Store.Invitations().GetInvitationByID(ctx, code); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Error("failed to fetch invitation", slog.String("code", code), slog.Any("error", err))
			}
			return domain.Invitation{}, wrap("redeem invitation", err)
		}
		log.Warn("invitation redemption attempted twice", slog.String("code", code))
		return domain.Invitation{}, ErrAlreadyRedeemed
	}

	log.Info("invitation redeemed", slog.String("code", code))
	s.publish(ctx, events.InvitationRedeemed, inv, time.Now().UTC())

	return inv, nil
}

// Lookup returns the invitation with its inviting user (and that user's
// vehicles) resolved. Redeemed invitations remain readable.
func (s *InvitationsService) Lookup(ctx context.Context, code string) (domain.Invitation, error) {
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, code)
	if err != nil {
		return domain.Invitation{}, wrap("lookup invitation", err)
	}
	if inv.UserID == nil {
		return inv, nil
	}

	user, err := s.Store.Users().GetUserByID(ctx, *inv.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return inv, nil
		}
		return domain.Invitation{}, wrap("lookup invitation user", err)
	}
	user.Vehicles, err = s.Store.Vehicles().ListVehiclesByUser(ctx, user.ID)
	if err != nil {
		return domain.Invitation{}, wrap("lookup invitation vehicles", err)
	}

	inv.User = &user
	return inv, nil
}

// publish never fails the calling operation; the state change is already committed.
func (s *InvitationsService) publish(ctx context.Context, subject string, inv domain.Invitation, at time.Time) {
	if s.Events == nil {
		return
	}
	err := s.Events.Publish(ctx, subject, events.InvitationEvent{
		Code:      inv.ID,
		UserID:    inv.UserID,
		VisitorID: inv.VisitorID,
		At:        at,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to publish event",
			slog.String("subject", subject),
			slog.String("code", inv.ID),
			slog.Any("error", err),
		)
	}
}
