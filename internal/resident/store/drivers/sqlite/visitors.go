package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
)

const visitorCols = `id, nombre, fecha_visita, usuario_id`

type visitorsRepo struct {
	q querier
}

func scanVisitor(row rowScanner) (domain.Visitor, error) {
	var (
		v         domain.Visitor
		visitDate sql.NullString
		userID    sql.NullInt64
	)
	if err := row.Scan(&v.ID, &v.Name, &visitDate, &userID); err != nil {
		return domain.Visitor{}, err
	}
	date, err := mapNullDate(visitDate)
	if err != nil {
		return domain.Visitor{}, err
	}
	v.VisitDate = date
	v.UserID = mapNullInt64Ptr(userID)
	return v, nil
}

func (r *visitorsRepo) CreateVisitor(ctx context.Context, v domain.Visitor) (domain.Visitor, error) {
	const q = `INSERT INTO visitantes (nombre, fecha_visita, usuario_id) VALUES (?, ?, ?) RETURNING id`
	err := r.q.QueryRowContext(ctx, q,
		v.Name, mapDateNull(v.VisitDate), mapOptionalInt64(v.UserID),
	).Scan(&v.ID)
	if err != nil {
		return domain.Visitor{}, mapWriteErr(err)
	}
	return v, nil
}

func (r *visitorsRepo) GetVisitorByID(ctx context.Context, id int64) (domain.Visitor, error) {
	const q = `SELECT ` + visitorCols + ` FROM visitantes WHERE id = ?`
	v, err := scanVisitor(r.q.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Visitor{}, mapNotFound(err)
	}
	return v, nil
}

func (r *visitorsRepo) ListVisitors(ctx context.Context, page domain.Page) ([]domain.Visitor, error) {
	const q = `SELECT ` + visitorCols + ` FROM visitantes ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.q.QueryContext(ctx, q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	visitors := []domain.Visitor{}
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, err
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func (r *visitorsRepo) UpdateVisitor(ctx context.Context, v domain.Visitor) error {
	const q = `UPDATE visitantes SET nombre = ?, fecha_visita = ?, usuario_id = ? WHERE id = ?`
	return requireAffected(r.q.ExecContext(ctx, q,
		v.Name, mapDateNull(v.VisitDate), mapOptionalInt64(v.UserID), v.ID,
	))
}

func (r *visitorsRepo) DeleteVisitor(ctx context.Context, id int64) error {
	const q = `DELETE FROM visitantes WHERE id = ?`
	return requireAffected(r.q.ExecContext(ctx, q, id))
}
