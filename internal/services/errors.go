package services

import (
	"errors"
	"fmt"

	"gym_crm_backend/pkg/utils"
)

// ErrValidation is the generic validation error shared by every resource.
var ErrValidation = errors.New("validation error")

// applyField overwrites dst with a provided, non-null value.
func applyField[T any](name string, field utils.Optional[T], dst *T) error {
	if err := field.ApplyTo(dst); err != nil {
		return fmt.Errorf("%w: %s %v", ErrValidation, name, err)
	}
	return nil
}

// valueOr dereferences p, falling back to def when p is nil.
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
