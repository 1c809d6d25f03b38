package postgres

import (
	"context"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/jackc/pgx/v5"
)

const vehicleCols = `id, placa, marca, modelo, color, usuario_id`

type vehiclesRepo struct {
	q querier
}

func (r *vehiclesRepo) CreateVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	const q = `INSERT INTO vehiculos (placa, marca, modelo, color, usuario_id)
VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.q.QueryRow(ctx, q, v.Plate, v.Make, v.Model, v.Color, v.UserID).Scan(&v.ID)
	if err != nil {
		return domain.Vehicle{}, mapWriteErr(err)
	}
	return v, nil
}

func (r *vehiclesRepo) GetVehicleByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleCols + ` FROM vehiculos WHERE id = $1`
	var v domain.Vehicle
	err := r.q.QueryRow(ctx, q, id).Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Color, &v.UserID)
	if err != nil {
		return domain.Vehicle{}, mapNotFound(err)
	}
	return v, nil
}

func (r *vehiclesRepo) ListVehicles(ctx context.Context, page domain.Page) ([]domain.Vehicle, error) {
	const q = `SELECT ` + vehicleCols + ` FROM vehiculos ORDER BY id LIMIT $1 OFFSET $2`
	return r.list(ctx, q, page.Limit, page.Offset)
}

func (r *vehiclesRepo) ListVehiclesByUser(ctx context.Context, userID int64) ([]domain.Vehicle, error) {
	const q = `SELECT ` + vehicleCols + ` FROM vehiculos WHERE usuario_id = $1 ORDER BY id`
	return r.list(ctx, q, userID)
}

func (r *vehiclesRepo) list(ctx context.Context, q string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	vehicles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Vehicle, error) {
		var v domain.Vehicle
		err := row.Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Color, &v.UserID)
		return v, err
	})
	if err != nil {
		return nil, err
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	return vehicles, nil
}

func (r *vehiclesRepo) UpdateVehicle(ctx context.Context, v domain.Vehicle) error {
	const q = `UPDATE vehiculos SET placa = $1, marca = $2, modelo = $3, color = $4, usuario_id = $5 WHERE id = $6`
	return requireAffected(r.q.Exec(ctx, q, v.Plate, v.Make, v.Model, v.Color, v.UserID, v.ID))
}

func (r *vehiclesRepo) DeleteVehicle(ctx context.Context, id int64) error {
	const q = `DELETE FROM vehiculos WHERE id = $1`
	return requireAffected(r.q.Exec(ctx, q, id))
}
