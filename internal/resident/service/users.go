package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/store"
	"github.com/aussiebroadwan/iresident/pkg/slogx"
)

type UsersService struct {
	Store store.Store
}

func (s *UsersService) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	users, err := s.Store.Users().ListUsers(ctx, page)
	return users, wrap("list users", err)
}

// Get returns the user with its vehicles resolved.
func (s *UsersService) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, wrap("get user", err)
	}
	return s.withVehicles(ctx, s.Store, u)
}

// Login resolves the first user registered under email. There is no
// credential check; it is an identity lookup only.
func (s *UsersService) Login(ctx context.Context, email string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted for unknown email")
		}
		return domain.User{}, wrap("login", err)
	}

	log.Info("user logged in", slog.Int64("user_id", u.ID))
	return s.withVehicles(ctx, s.Store, u)
}

func (s *UsersService) Create(ctx context.Context, u domain.User) (domain.User, error) {
	log := slogx.FromContext(ctx)

	u.Vehicles = nil
	created, err := s.Store.Users().CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, store.ErrReference) {
			log.Warn("user created with unknown role", slog.Any("role_id", u.RoleID))
		} else {
			log.Error("failed to create user", slog.Any("error", err))
		}
		return domain.User{}, wrap("create user", err)
	}

	log.Info("user created", slog.Int64("user_id", created.ID))
	return created, nil
}

func (s *UsersService) Update(ctx context.Context, id int64, patch domain.UserUpdate) (domain.User, error) {
	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)
		if err := tx.Users().UpdateUser(ctx, current); err != nil {
			return err
		}
		updated, err = s.withVehicles(ctx, tx, current)
		return err
	})
	if err != nil {
		return domain.User{}, wrap("update user", err)
	}
	return updated, nil
}

// Delete removes the user. Vehicles, visitors and invitations pointing at the
// user survive with the reference cleared.
func (s *UsersService) Delete(ctx context.Context, id int64) (domain.User, error) {
	var deleted domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Users().DeleteUser(ctx, id); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return domain.User{}, wrap("delete user", err)
	}

	slogx.FromContext(ctx).Info("user deleted", slog.Int64("user_id", id))
	return deleted, nil
}

// withVehicles reads through st so it can run inside a transaction.
func (s *UsersService) withVehicles(ctx context.Context, st store.Store, u domain.User) (domain.User, error) {
	vehicles, err := st.Vehicles().ListVehiclesByUser(ctx, u.ID)
	if err != nil {
		return domain.User{}, wrap("list user vehicles", err)
	}
	u.Vehicles = vehicles
	return u, nil
}
