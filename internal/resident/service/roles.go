package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/store"
	"github.com/aussiebroadwan/iresident/pkg/slogx"
)

type RolesService struct {
	Store store.Store
}

func validateRole(r domain.Role) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("role name is required: %w", ErrInvalidArgument)
	}
	return nil
}

// List returns a page of roles in insertion order.
func (s *RolesService) List(ctx context.Context, page domain.Page) ([]domain.Role, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	roles, err := s.Store.Roles().ListRoles(ctx, page)
	return roles, wrap("list roles", err)
}

func (s *RolesService) Get(ctx context.Context, id int64) (domain.Role, error) {
	role, err := s.Store.Roles().GetRoleByID(ctx, id)
	return role, wrap("get role", err)
}

func (s *RolesService) Create(ctx context.Context, r domain.Role) (domain.Role, error) {
	log := slogx.FromContext(ctx)

	if err := validateRole(r); err != nil {
		return domain.Role{}, err
	}

	created, err := s.Store.Roles().CreateRole(ctx, r)
	if err != nil {
		log.Error("failed to create role", slog.Any("error", err))
		return domain.Role{}, wrap("create role", err)
	}

	log.Info("role created", slog.Int64("role_id", created.ID))
	return created, nil
}

// Update applies the supplied fields to an existing role.
func (s *RolesService) Update(ctx context.Context, id int64, patch domain.RoleUpdate) (domain.Role, error) {
	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Roles().GetRoleByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)
		if err := validateRole(current); err != nil {
			return err
		}
		if err := tx.Roles().UpdateRole(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return domain.Role{}, wrap("update role", err)
	}
	return updated, nil
}

// Delete removes the role and returns its last stored value. Users holding
// the role keep their rows with rol_id cleared.
func (s *RolesService) Delete(ctx context.Context, id int64) (domain.Role, error) {
	var deleted domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Roles().GetRoleByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Roles().DeleteRole(ctx, id); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return domain.Role{}, wrap("delete role", err)
	}

	slogx.FromContext(ctx).Info("role deleted", slog.Int64("role_id", id))
	return deleted, nil
}
