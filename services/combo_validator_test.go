package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUnknownComboShortCircuits(t *testing.T) {
	_, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	result := validator.Validate(999, []SlotSelection{{SlotID: 1, ProductID: 1, Quantity: 1}})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not found")
}

func TestValidateAcceptsSatisfiedSlots(t *testing.T) {
	_, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	result := validator.Validate(1, []SlotSelection{
		{SlotID: 1, ProductID: 2, Quantity: 1}, // Sprite
		{SlotID: 2, ProductID: 4, Quantity: 1}, // Fries
	})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateMissingRequiredSlotNamesIt(t *testing.T) {
	_, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	result := validator.Validate(1, []SlotSelection{
		{SlotID: 2, ProductID: 4, Quantity: 1},
	})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Drink")
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	_, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	result := validator.Validate(1, []SlotSelection{
		{SlotID: 99, ProductID: 1, Quantity: 1}, // unknown slot
		{SlotID: 1, ProductID: 4, Quantity: 1},  // Fries not allowed as a drink
	})
	assert.False(t, result.Valid)
	// unknown slot, disallowed product, missing Side slot
	assert.Len(t, result.Errors, 3)
}

func TestValidateDisallowedProduct(t *testing.T) {
	_, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	result := validator.Validate(1, []SlotSelection{
		{SlotID: 1, ProductID: 3, Quantity: 1}, // Water not in whitelist
		{SlotID: 2, ProductID: 4, Quantity: 1},
	})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "not allowed")
}

func TestValidateCategoryWhitelistIsIndependent(t *testing.T) {
	db, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	// constrain the side slot to the Sides category only
	combo, err := catalog.ComboByID(1)
	assert.NoError(t, err)
	slot := combo.Slots[1]
	slot.AllowedCategoryIDs = []uint{2}
	assert.NoError(t, db.Save(&slot).Error)

	// Coke passes neither the product whitelist nor the category
	// whitelist: two separate errors for one selection
	result := validator.Validate(1, []SlotSelection{
		{SlotID: 1, ProductID: 1, Quantity: 1},
		{SlotID: 2, ProductID: 1, Quantity: 1},
	})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
}

func TestValidateRejectsSelfContainment(t *testing.T) {
	db, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	// open up the drink slot so only the self-reference rule fires
	combo, err := catalog.ComboByID(1)
	assert.NoError(t, err)
	slot := combo.Slots[0]
	slot.AllowedProductIDs = nil
	assert.NoError(t, db.Save(&slot).Error)

	result := validator.Validate(1, []SlotSelection{
		{SlotID: 1, ProductID: 1, Quantity: 1}, // product id 1 == combo id 1
		{SlotID: 2, ProductID: 4, Quantity: 1},
	})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cannot contain itself")
}

func TestValidateCardinalityBounds(t *testing.T) {
	db, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	// quantity counts toward cardinality: 2 drinks in a 1-max slot
	result := validator.Validate(1, []SlotSelection{
		{SlotID: 1, ProductID: 1, Quantity: 2},
		{SlotID: 2, ProductID: 4, Quantity: 1},
	})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "at most 1")

	// widen the slot to 2..3 and undershoot it
	combo, err := catalog.ComboByID(1)
	assert.NoError(t, err)
	slot := combo.Slots[0]
	slot.MinCount = 2
	slot.MaxCount = 3
	assert.NoError(t, db.Save(&slot).Error)

	result = validator.Validate(1, []SlotSelection{
		{SlotID: 1, ProductID: 1, Quantity: 1},
		{SlotID: 2, ProductID: 4, Quantity: 1},
	})
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "at least 2")

	result = validator.Validate(1, []SlotSelection{
		{SlotID: 1, ProductID: 1, Quantity: 1},
		{SlotID: 1, ProductID: 2, Quantity: 1},
		{SlotID: 2, ProductID: 4, Quantity: 1},
	})
	assert.True(t, result.Valid)
}

func TestValidateOptionalSlotMayBeSkipped(t *testing.T) {
	db, catalog := setupTestCatalog()
	validator := NewComboValidator(catalog)

	combo, err := catalog.ComboByID(1)
	assert.NoError(t, err)
	slot := combo.Slots[1]
	slot.Required = false
	assert.NoError(t, db.Save(&slot).Error)

	result := validator.Validate(1, []SlotSelection{
		{SlotID: 1, ProductID: 1, Quantity: 1},
	})
	assert.True(t, result.Valid)
}
