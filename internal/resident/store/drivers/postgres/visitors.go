package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/jackc/pgx/v5"
)

const visitorCols = `id, nombre, fecha_visita, usuario_id`

type visitorsRepo struct {
	q querier
}

func scanVisitor(row pgx.Row) (domain.Visitor, error) {
	var (
		v         domain.Visitor
		visitDate *time.Time
	)
	if err := row.Scan(&v.ID, &v.Name, &visitDate, &v.UserID); err != nil {
		return domain.Visitor{}, err
	}
	v.VisitDate = dateValue(visitDate)
	return v, nil
}

func (r *visitorsRepo) CreateVisitor(ctx context.Context, v domain.Visitor) (domain.Visitor, error) {
	const q = `INSERT INTO visitantes (nombre, fecha_visita, usuario_id) VALUES ($1, $2, $3) RETURNING id`
	if err := r.q.QueryRow(ctx, q, v.Name, dateOrNil(v.VisitDate), v.UserID).Scan(&v.ID); err != nil {
		return domain.Visitor{}, mapWriteErr(err)
	}
	return v, nil
}

func (r *visitorsRepo) GetVisitorByID(ctx context.Context, id int64) (domain.Visitor, error) {
	const q = `SELECT ` + visitorCols + ` FROM visitantes WHERE id = $1`
	v, err := scanVisitor(r.q.QueryRow(ctx, q, id))
	if err != nil {
		return domain.Visitor{}, mapNotFound(err)
	}
	return v, nil
}

func (r *visitorsRepo) ListVisitors(ctx context.Context, page domain.Page) ([]domain.Visitor, error) {
	const q = `SELECT ` + visitorCols + ` FROM visitantes ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
	const q = `UPDATE visitantes SET nombre = $1, fecha_visita = $2, usuario_id = $3 WHERE id = $4`
	return requireAffected(r.q.Exec(ctx, q, v.Name, dateOrNil(v.VisitDate), v.UserID, v.ID))
}

func (r *visitorsRepo) DeleteVisitor(ctx context.Context, id int64) error {
	const q = `DELETE FROM visitantes WHERE id = $1`
	return requireAffected(r.q.Exec(ctx, q, id))
}
