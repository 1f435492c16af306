package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSelection -> caller tried to select an option,
	// ingredient, variant or slot that does not belong to the
	// configuration being edited.
	ErrInvalidSelection = errors.New("selection does not belong to this product configuration")

	ErrUnknownProduct = errors.New("product not found")
	ErrUnknownCombo   = errors.New("combo not found")

	ErrEmptyCart = errors.New("cart is empty")
)

// ComboValidationError carries every structural violation found on a
// proposed combo so the caller can show all of them at once.
type ComboValidationError struct {
	ComboID  uint
	Messages []string
}

func (e *ComboValidationError) Error() string {
	return fmt.Sprintf("combo %d validation failed: %s", e.ComboID, strings.Join(e.Messages, "; "))
}
