// Package service holds the resident business rules on top of the store.
package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/iresident/internal/resident/domain"
	"github.com/aussiebroadwan/iresident/internal/resident/store"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyRedeemed = errors.New("invitation already redeemed")
	ErrReference       = errors.New("referenced record does not exist")
	ErrInvalidArgument = errors.New("invalid argument")
)

// wrap translates store sentinels into service sentinels and prefixes op.
// Errors without a service meaning pass through wrapped as-is.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, store.ErrReference):
		return fmt.Errorf("%s: %w", op, ErrReference)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func checkPage(page domain.Page) error {
	if !page.Valid() {
		return fmt.Errorf("offset and limit must be non-negative: %w", ErrInvalidArgument)
	}
	return nil
}
