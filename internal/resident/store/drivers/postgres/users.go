package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/jackc/pgx/v5"
)

const userCols = `id, nombre, direccion, telefono, email, fecha_ingreso, rol_id`

type usersRepo struct {
	q querier
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u        domain.User
		joinDate *time.Time
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Address, &u.Phone, &u.Email, &joinDate, &u.RoleID); err != nil {
		return domain.User{}, err
	}
	u.JoinDate = dateValue(joinDate)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `INSERT INTO usuarios (nombre, direccion, telefono, email, fecha_ingreso, rol_id)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(ctx, q,
		u.Name, u.Address, u.Phone, u.Email, dateOrNil(u.JoinDate), u.RoleID,
	).Scan(&u.ID)
	if err != nil {
		return domain.User{}, mapWriteErr(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM usuarios WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(ctx, q, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM usuarios WHERE email = $1 ORDER BY id LIMIT 1`
	u, err := scanUser(r.q.QueryRow(ctx, q, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM usuarios ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
SET nombre = $1, direccion = $2, telefono = $3, email = $4, fecha_ingreso = $5, rol_id = $6
WHERE id = $7`
	return requireAffected(r.q.Exec(ctx, q,
		u.Name, u.Address, u.Phone, u.Email, dateOrNil(u.JoinDate), u.RoleID, u.ID,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	const q = `DELETE FROM usuarios WHERE id = $1`
	return requireAffected(r.q.Exec(ctx, q, id))
}
