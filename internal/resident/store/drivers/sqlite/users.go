package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
)

const userCols = `id, nombre, direccion, telefono, email, fecha_ingreso, rol_id`

type usersRepo struct {
	q querier
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u        domain.User
		joinDate sql.NullString
		roleID   sql.NullInt64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Address, &u.Phone, &u.Email, &joinDate, &roleID); err != nil {
		return domain.User{}, err
	}
	date, err := mapNullDate(joinDate)
	if err != nil {
		return domain.User{}, err
	}
	u.JoinDate = date
	u.RoleID = mapNullInt64Ptr(roleID)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `INSERT INTO usuarios (nombre, direccion, telefono, email, fecha_ingreso, rol_id)
VALUES (?, ?, ?, ?, ?, ?) RETURNING id`
	err := r.q.QueryRowContext(ctx, q,
		u.Name, u.Address, u.Phone, u.Email, mapDateNull(u.JoinDate), mapOptionalInt64(u.RoleID),
	).Scan(&u.ID)
	if err != nil {
		return domain.User{}, mapWriteErr(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM usuarios WHERE id = ?`
	u, err := scanUser(r.q.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM usuarios WHERE email = ? ORDER BY id LIMIT 1`
	u, err := scanUser(r.q.QueryRowContext(ctx, q, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM usuarios ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.q.QueryContext(ctx, q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	const q = `UPDATE usuarios
SET nombre = ?, direccion = ?, telefono = ?, email = ?, fecha_ingreso = ?, rol_id = ?
WHERE id = ?`
	return requireAffected(r.q.ExecContext(ctx, q,
		u.Name, u.Address, u.Phone, u.Email, mapDateNull(u.JoinDate), mapOptionalInt64(u.RoleID),
		u.ID,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	const q = `DELETE FROM usuarios WHERE id = ?`
	return requireAffected(r.q.ExecContext(ctx, q, id))
}
