package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
)

const vehicleCols = `id, placa, marca, modelo, color, usuario_id`

type vehiclesRepo struct {
	q querier
}

func scanVehicle(row rowScanner) (domain.Vehicle, error) {
	var (
		v      domain.Vehicle
		userID sql.NullInt64
	)
	if err := row.Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Color, &userID); err != nil {
		return domain.Vehicle{}, err
	}
	v.UserID = mapNullInt64Ptr(userID)
	return v, nil
}

func (r *vehiclesRepo) CreateVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	const q = `INSERT INTO vehiculos (placa, marca, modelo, color, usuario_id)
VALUES (?, ?, ?, ?, ?) RETURNING id`
	err := r.q.QueryRowContext(ctx, q,
		v.Plate, v.Make, v.Model, v.Color, mapOptionalInt64(v.UserID),
	).Scan(&v.ID)
	if err != nil {
		return domain.Vehicle{}, mapWriteErr(err)
	}
	return v, nil
}

func (r *vehiclesRepo) GetVehicleByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleCols + ` FROM vehiculos WHERE id = ?`
	v, err := scanVehicle(r.q.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Vehicle{}, mapNotFound(err)
	}
	return v, nil
}

func (r *vehiclesRepo) ListVehicles(ctx context.Context, page domain.Page) ([]domain.Vehicle, error) {
	const q = `SELECT ` + vehicleCols + ` FROM vehiculos ORDER BY id LIMIT ? OFFSET ?`
	return r.list(ctx, q, page.Limit, page.Offset)
}

func (r *vehiclesRepo) ListVehiclesByUser(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	const q = `SELECT ` + vehicleCols + ` FROM vehiculos WHERE usuario_id = ? ORDER BY id`
	return r.list(ctx, q, userID)
}

func (r *vehiclesRepo) list(ctx context.Context, q string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.q.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	vehicles := []domain.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehiclesRepo) UpdateVehicle(ctx context.Context, v domain.Vehicle) error {
	const q = `UPDATE vehiculos SET placa = ?, marca = ?, modelo = ?, color = ?, usuario_id = ? WHERE id = ?`
	return requireAffected(r.q.ExecContext(ctx, q,
		v.Plate, v.Make, v.Model, v.Color, mapOptionalInt64(v.UserID), v.ID,
	))
}

func (r *vehiclesRepo) DeleteVehicle(ctx context.Context, id int64) error {
	const q = `DELETE FROM vehiculos WHERE id = ?`
	return requireAffected(r.q.ExecContext(ctx, q, id))
}
