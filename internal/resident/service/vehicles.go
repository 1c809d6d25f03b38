package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/store"
	"github.com/aussiebroadwan/iresident/pkg/slogx"
)

type VehiclesService struct {
	Store store.Store
}

func (s *VehiclesService) List(ctx context.Context, page domain.Page) ([]domain.Vehicle, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	vehicles, err := s.Store.Vehicles().ListVehicles(ctx, page)
	return vehicles, wrap("list vehicles", err)
}

func (s *VehiclesService) Get(ctx context.Context, id int64) (domain.Vehicle, error) {
	v, err := s.Store.Vehicles().GetVehicleByID(ctx, id)
	return v, wrap("get vehicle", err)
}

func (s *VehiclesService) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	created, err := s.Store.Vehicles().CreateVehicle(ctx, v)
	if err != nil {
		return domain.Vehicle{}, wrap("create vehicle", err)
	}

	slogx.FromContext(ctx).Info("vehicle created",
		slog.Int64("vehicle_id", created.ID),
		slog.String("plate", created.Plate),
	)
	return created, nil
}

func (s *VehiclesService) Update(ctx context.Context, id int64, patch domain.VehicleUpdate) (domain.Vehicle, error) {
	var updated domain.Vehicle
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Vehicles().GetVehicleByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)
		if err := tx.Vehicles().UpdateVehicle(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return domain.Vehicle{}, wrap("update vehicle", err)
	}
	return updated, nil
}

func (s *VehiclesService) Delete(ctx context.Context, id int64) (domain.Vehicle, error) {
	var deleted domain.Vehicle
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Vehicles().GetVehicleByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Vehicles().DeleteVehicle(ctx, id); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return domain.Vehicle{}, wrap("delete vehicle", err)
	}

	slogx.FromContext(ctx).Info("vehicle deleted", slog.Int64("vehicle_id", id))
	return deleted, nil
}
