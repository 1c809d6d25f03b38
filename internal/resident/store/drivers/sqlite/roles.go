package sqlite

import (
	"context"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
)

type rolesRepo struct {
	q querier
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) (domain.Role, error) {
	const q = `INSERT INTO roles (nombre) VALUES (?) RETURNING id`
	if err := r.q.QueryRowContext(ctx, q, role.Name).Scan(&role.ID); err != nil {
		return domain.Role{}, mapWriteErr(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	const q = `SELECT id, nombre FROM roles WHERE id = ?`
	var role domain.Role
	if err := r.q.QueryRowContext(ctx, q, id).Scan(&role.ID, &role.Name); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListRoles(ctx context.Context, page domain.Page) ([]domain.Role, error) {
	const q = `SELECT id, nombre FROM roles ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.q.QueryContext(ctx, q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) UpdateRole(ctx context.Context, role domain.Role) error {
	const q = `UPDATE roles SET nombre = ? WHERE id = ?`
	return requireAffected(r.q.ExecContext(ctx, q, role.Name, role.ID))
}

func (r *rolesRepo) DeleteRole(ctx context.Context, id int64) error {
	const q = `DELETE FROM roles WHERE id = ?`
	return requireAffected(r.q.ExecContext(ctx, q, id))
}
