package services

import (
	"fmt"

	"github.com/javacachava/Pizza-Brava-sub000/models"
)

// SlotSelection is one proposed pick for a combo slot.
type SlotSelection struct {
	SlotID    uint `json:"slot_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// ValidationResult lists every rule violation found; Valid is true
// iff the list is empty.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ComboValidator checks proposed slot selections against a combo's
// structural rules. Stateless, read-only; runs before a combo enters
// the cart and again on order submission in case the catalog moved.
type ComboValidator struct {
	catalog Catalog
}

func NewComboValidator(catalog Catalog) *ComboValidator {
	return &ComboValidator{catalog: catalog}
}

// Validate accumulates all violations instead of stopping at the
// first one, so the whole list can be shown to the user. Only an
// unknown combo short-circuits; nothing else is checkable then.
func (v *ComboValidator) Validate(comboID uint, selections []SlotSelection) ValidationResult {
	combo, err := v.catalog.ComboByID(comboID)
	if err != nil {
		return ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("combo %d not found", comboID)},
		}
	}

	var errs []string
	slotCounts := make(map[uint]int)

	for _, sel := range selections {
		slot := findSlot(combo.Slots, sel.SlotID)
		if slot == nil {
			errs = append(errs, fmt.Sprintf("slot %d does not belong to combo %q", sel.SlotID, combo.Name))
			continue
		}

		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		slotCounts[slot.ID] += qty

		if allowed := slot.AllowedProductIDs; len(allowed) > 0 && !containsID(allowed, sel.ProductID) {
			errs = append(errs, fmt.Sprintf("product %d is not allowed in slot %q", sel.ProductID, slot.Title))
		}
		if allowed := slot.AllowedCategoryIDs; len(allowed) > 0 {
			product, err := v.catalog.ProductByID(sel.ProductID)
			if err != nil {
				errs = append(errs, fmt.Sprintf("product %d not found for slot %q", sel.ProductID, slot.Title))
			} else if !containsID(allowed, product.CategoryID) {
				errs = append(errs, fmt.Sprintf("category of product %d is not allowed in slot %q", sel.ProductID, slot.Title))
			}
		}

		if sel.ProductID == combo.ID {
			errs = append(errs, fmt.Sprintf("combo %q cannot contain itself", combo.Name))
		}
	}

	for _, slot := range combo.Slots {
		count := slotCounts[slot.ID]
		if count == 0 {
			// an untouched optional slot is simply skipped
			if slot.Required {
				errs = append(errs, fmt.Sprintf("slot %q is required, expected at least %d selection(s)", slot.Title, maxInt(slot.MinCount, 1)))
			}
			continue
		}
		if count < slot.MinCount {
			errs = append(errs, fmt.Sprintf("slot %q needs at least %d selection(s), got %d", slot.Title, slot.MinCount, count))
		}
		if count > slot.MaxCount {
			errs = append(errs, fmt.Sprintf("slot %q allows at most %d selection(s), got %d", slot.Title, slot.MaxCount, count))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func findSlot(slots []models.ComboSlot, id uint) *models.ComboSlot {
	for i := range slots {
		if slots[i].ID == id {
			return &slots[i]
		}
	}
	return nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
