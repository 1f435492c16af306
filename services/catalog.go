package services

import (
	"errors"

	"github.com/javacachava/Pizza-Brava-sub000/models"
	"gorm.io/gorm"
)

// Catalog is the read-only view of products and combos the pricing
// and validation engines work against. Injected everywhere, never a
// package global, so tests can swap in whatever backing they want.
type Catalog interface {
	AllProducts() ([]models.Product, error)
	ProductByID(id uint) (*models.Product, error)
	AllCombos() ([]models.Combo, error)
	ComboByID(id uint) (*models.Combo, error)
}

// GormCatalog serves the catalog from the application database.
type GormCatalog struct {
	DB *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{DB: db}
}

func (gc *GormCatalog) AllProducts() ([]models.Product, error) {
	var products []models.Product
	err := gc.DB.Preload("Category").
		Preload("VariantGroups.Options").
		Preload("Ingredients").
		Find(&products).Error
	return products, err
}

func (gc *GormCatalog) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := gc.DB.Preload("Category").
		Preload("VariantGroups.Options").
		Preload("Ingredients").
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownProduct
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (gc *GormCatalog) AllCombos() ([]models.Combo, error) {
	var combos []models.Combo
	err := gc.DB.Preload("Slots").Find(&combos).Error
	return combos, err
}

func (gc *GormCatalog) ComboByID(id uint) (*models.Combo, error) {
	var combo models.Combo
	err := gc.DB.Preload("Slots").First(&combo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownCombo
	}
	if err != nil {
		return nil, err
	}
	return &combo, nil
}
