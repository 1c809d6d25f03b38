package postgres

import (
	"context"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/jackc/pgx/v5"
)

type rolesRepo struct {
	q querier
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) (domain.Role, error) {
	const q = `INSERT INTO roles (nombre) VALUES ($1) RETURNING id`
	if err := r.q.QueryRow(ctx, q, role.Name).Scan(&role.ID); err != nil {
		return domain.Role{}, mapWriteErr(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	const q = `SELECT id, nombre FROM roles WHERE id = $1`
	var role domain.Role
	if err := r.q.QueryRow(ctx, q, id).Scan(&role.ID, &role.Name); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListRoles(ctx context.Context, page domain.Page) ([]domain.Role, error) {
	const q = `SELECT id, nombre FROM roles ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	roles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Role, error) {
		var role domain.Role
		err := row.Scan(&role.ID, &role.Name)
		return role, err
	})
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	return roles, nil
}

func (r *rolesRepo) UpdateRole(ctx context.Context, role domain.Role) error {
	const q = `UPDATE roles SET nombre = $1 WHERE id = $2`
	return requireAffected(r.q.Exec(ctx, q, role.Name, role.ID))
}

func (r *rolesRepo) DeleteRole(ctx context.Context, id int64) error {
	const q = `DELETE FROM roles WHERE id = $1`
	return requireAffected(r.q.Exec(ctx, q, id))
}
