package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
)

type invitationsRepo struct {
	q querier
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	const q = `INSERT INTO invitaciones (id, usuario_id, visitante_id, fecha_invitacion, canjeada)
VALUES (?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, q,
		inv.ID,
		mapOptionalInt64(inv.UserID),
		mapOptionalInt64(inv.VisitorID),
		mapTimestamp(inv.InvitedAt),
		inv.Redeemed,
	)
	return mapWriteErr(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, code string) (domain.Invitation, error) {
	const q = `SELECT id, usuario_id, visitante_id, fecha_invitacion, canjeada
FROM invitaciones WHERE id = ?`
	inv, err := scanInvitation(r.q.QueryRowContext(ctx, q, code))
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

// MarkInvitationRedeemed runs as a single statement. SQLite serialises
// writers, so only the first caller matches the canjeada = 0 predicate.
func (r *invitationsRepo) MarkInvitationRedeemed(ctx context.Context, code string) (domain.Invitation, bool, error) {
	const q = `UPDATE invitaciones SET canjeada = 1 WHERE id = ? AND canjeada = 0
RETURNING id, usuario_id, visitante_id, fecha_invitacion, canjeada`
	inv, err := scanInvitation(r.q.QueryRowContext(ctx, q, code))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Invitation{}, false, nil
	}
	if err != nil {
		return domain.Invitation{}, false, err
	}
	return inv, true, nil
}

func scanInvitation(row *sql.Row) (domain.Invitation, error) {
	var (
		inv       domain.Invitation
		userID    sql.NullInt64
		visitorID sql.NullInt64
		invitedAt string
	)
	if err := row.Scan(&inv.ID, &userID, &visitorID, &invitedAt, &inv.Redeemed); err != nil {
		return domain.Invitation{}, err
	}
	ts, err := parseTimestamp(invitedAt)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.UserID = mapNullInt64Ptr(userID)
	inv.VisitorID = mapNullInt64Ptr(visitorID)
	inv.InvitedAt = ts
	return inv, nil
}
