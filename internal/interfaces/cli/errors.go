package cli

import (
	"errors"

	"github.com/jhoicas/sales-ledger/internal/domain"
)

// messageFor traduce un error de dominio al mensaje que ve el usuario.
func messageFor(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, domain.ErrNotFound):
		return "Product not found."
	case errors.Is(err, domain.ErrInsufficientStock):
		return "Insufficient quantity in stock."
	case errors.Is(err, domain.ErrStorage):
		return "Database error: " + storageCause(err).Error()
	default:
		return "Error: " + err.Error()
	}
}

// storageCause devuelve el error del driver envuelto junto a domain.ErrStorage,
// sin la operación ni el texto del sentinel.
func storageCause(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		errs := e.Unwrap()
		for i, w := range errs {
			if w == domain.ErrStorage && i+1 < len(errs) {
				return errs[i+1]
			}
		}
		for _, w := range errs {
			if errors.Is(w, domain.ErrStorage) {
				return storageCause(w)
			}
		}
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			return storageCause(inner)
		}
	}
	return err
}
