package postgres

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/jackc/pgx/v5"
)

type invitationsRepo struct {
	q querier
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	const q = `INSERT INTO invitaciones (id, usuario_id, visitante_id, fecha_invitacion, canjeada)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, q, inv.ID, inv.UserID, inv.VisitorID, inv.InvitedAt.UTC(), inv.Redeemed)
	return mapWriteErr(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, code string) (domain.Invitation, error) {
	const q = `SELECT id, usuario_id, visitante_id, fecha_invitacion, canjeada
FROM invitaciones WHERE id = $1`
	var inv domain.Invitation
	err := r.q.QueryRow(ctx, q, code).Scan(&inv.ID, &inv.UserID, &inv.VisitorID, &inv.InvitedAt, &inv.Redeemed)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.InvitedAt = inv.InvitedAt.UTC()
	return inv, nil
}

// MarkInvitationRedeemed relies on the row lock taken by UPDATE: a second
// concurrent caller re-evaluates the predicate after the first commits and
// matches zero rows.
func (r *invitationsRepo) MarkInvitationRedeemed(ctx context.Context, code string) (domain.Invitation, bool, error) {
	const q = `UPDATE invitaciones SET canjeada = TRUE WHERE id = $1 AND canjeada = FALSE
RETURNING id, usuario_id, visitante_id, fecha_invitacion, canjeada`
	var inv domain.Invitation
	err := r.q.QueryRow(ctx, q, code).Scan(&inv.ID, &inv.UserID, &inv.VisitorID, &inv.InvitedAt, &inv.Redeemed)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Invitation{}, false, nil
	}
	if err != nil {
		return domain.Invitation{}, false, err
	}
	inv.InvitedAt = inv.InvitedAt.UTC()
	return inv, true, nil
}
