package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/javacachava/Pizza-Brava-sub000/models"
	"github.com/javacachava/Pizza-Brava-sub000/services"
	"github.com/javacachava/Pizza-Brava-sub000/utils"
	"gorm.io/gorm"
)

type ComboController struct {
	DB        *gorm.DB
	Catalog   services.Catalog
	Validator *services.ComboValidator
}

func NewComboController(db *gorm.DB) *ComboController {
	catalog := services.NewGormCatalog(db)
	return &ComboController{
		DB:        db,
		Catalog:   catalog,
		Validator: services.NewComboValidator(catalog),
	}
}

type comboSlotInput struct {
	Title              string `json:"title" binding:"required"`
	Required           *bool  `json:"required"`
	MinCount           int    `json:"min_count"`
	MaxCount           int    `json:"max_count"`
	AllowSwap          *bool  `json:"allow_swap"`
	DefaultProductID   uint   `json:"default_product_id" binding:"required"`
	AllowedProductIDs  []uint `json:"allowed_product_ids"`
	AllowedCategoryIDs []uint `json:"allowed_category_ids"`
}

type comboInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Available   *bool            `json:"available"`
	Slots       []comboSlotInput `json:"slots"`
}

func (in *comboSlotInput) toModel(comboID uint) (models.ComboSlot, error) {
	slot := models.ComboSlot{
		ComboID:            comboID,
		Title:              in.Title,
		Required:           true,
		MinCount:           in.MinCount,
		MaxCount:           in.MaxCount,
		AllowSwap:          true,
		DefaultProductID:   in.DefaultProductID,
		AllowedProductIDs:  in.AllowedProductIDs,
		AllowedCategoryIDs: in.AllowedCategoryIDs,
	}
	if in.Required != nil {
		slot.Required = *in.Required
	}
	if in.AllowSwap != nil {
		slot.AllowSwap = *in.AllowSwap
	}
	// min=1,max=1 when unset: pick exactly one
	if slot.MinCount == 0 {
		slot.MinCount = 1
	}
	if slot.MaxCount == 0 {
		slot.MaxCount = 1
	}
	if slot.MinCount > slot.MaxCount {
		return slot, errors.New("slot min_count cannot exceed max_count")
	}
	if slot.Required && slot.MinCount < 1 {
		return slot, errors.New("a required slot needs min_count >= 1")
	}
	return slot, nil
}

// GetAllCombos
func (cc *ComboController) GetAllCombos(c *gin.Context) {
	combos, err := cc.Catalog.AllCombos()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of combos", combos)
}

// GetComboByID
func (cc *ComboController) GetComboByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("combo_id"))

	combo, err := cc.Catalog.ComboByID(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Combo detail", combo)
}

// CreateCombo with nested slots
func (cc *ComboController) CreateCombo(c *gin.Context) {
	var input comboInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	combo := models.Combo{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Available:   available,
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&combo).Error; err != nil {
			return err
		}
		for _, slotInput := range input.Slots {
			slot, err := slotInput.toModel(combo.ID)
			if err != nil {
				return err
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
			combo.Slots = append(combo.Slots, slot)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Combo created", combo)
}

// UpdateCombo replaces the combo and its slots
func (cc *ComboController) UpdateCombo(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("combo_id"))

	var combo models.Combo
	if err := cc.DB.First(&combo, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("combo not found"))
		return
	}

	var input comboInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	combo.Name = input.Name
	combo.Description = input.Description
	combo.Price = input.Price
	if input.Available != nil {
		combo.Available = *input.Available
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&combo).Error; err != nil {
			return err
		}
		if err := tx.Where("combo_id = ?", combo.ID).Delete(&models.ComboSlot{}).Error; err != nil {
			return err
		}
		combo.Slots = nil
		for _, slotInput := range input.Slots {
			slot, err := slotInput.toModel(combo.ID)
			if err != nil {
				return err
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
			combo.Slots = append(combo.Slots, slot)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Combo updated", combo)
}

// DeleteCombo
func (cc *ComboController) DeleteCombo(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("combo_id"))

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("combo_id = ?", id).Delete(&models.ComboSlot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Combo{}, id).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Combo deleted", gin.H{"combo_id": id})
}

// ValidateCombo -> POST /combos/:combo_id/validate
// Dry-run check of proposed slot selections; always 200 with the
// full violation list so the UI can show everything at once.
func (cc *ComboController) ValidateCombo(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("combo_id"))

	var input struct {
		Selections []services.SlotSelection `json:"selections"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result := cc.Validator.Validate(uint(id), input.Selections)
	utils.RespondJSON(c, http.StatusOK, "Validation result", result)
}
