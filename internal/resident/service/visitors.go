package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/store"
	"github.com/aussiebroadwan/iresident/pkg/slogx"
)

type VisitorsService struct {
	Store store.Store
}

func (s *VisitorsService) List(ctx context.Context, page domain.Page) ([]domain.Visitor, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	visitors, err := s.Store.Visitors().ListVisitors(ctx, page)
	return visitors, wrap("list visitors", err)
}

func (s *VisitorsService) Get(ctx context.Context, id int64) (domain.Visitor, error) {
	v, err := s.Store.Visitors().GetVisitorByID(ctx, id)
	return v, wrap("get visitor", err)
}

func (s *VisitorsService) Create(ctx context.Context, v domain.Visitor) (domain.Visitor, error) {
	created, err := s.Store.Visitors().CreateVisitor(ctx, v)
	if err != nil {
		return domain.Visitor{}, wrap("create visitor", err)
	}

	slogx.FromContext(ctx).Info("visitor created", slog.Int64("visitor_id", created.ID))
	return created, nil
}

func (s *VisitorsService) Update(ctx context.Context, id int64, patch domain.VisitorUpdate) (domain.Visitor, error) {
	var updated domain.Visitor
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Visitors().GetVisitorByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(&current)
		if err := tx.Visitors().UpdateVisitor(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return domain.Visitor{}, wrap("update visitor", err)
	}
	return updated, nil
}

func (s *VisitorsService) Delete(ctx context.Context, id int64) (domain.Visitor, error) {
	var deleted domain.Visitor
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Visitors().GetVisitorByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Visitors().DeleteVisitor(ctx, id); err != nil {
			return err
		}
		deleted = current
		return nil
	})
	if err != nil {
		return domain.Visitor{}, wrap("delete visitor", err)
	}

	slogx.FromContext(ctx).Info("visitor deleted", slog.Int64("visitor_id", id))
	return deleted, nil
}
