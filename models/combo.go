package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Combo struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Price       float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	Available   bool        `gorm:"not null;default:true" json:"available"`
	Slots       []ComboSlot `gorm:"foreignKey:ComboID" json:"slots"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

// ComboSlot is a named hole in a combo that must be filled from an
// allowed set of products, subject to min/max cardinality.
// The whitelists live in JSON text columns; the slice mirrors are
// kept in sync by the BeforeSave/AfterFind hooks below.
type ComboSlot struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ComboID  uint   `gorm:"not null;index" json:"combo_id"`
	Title    string `gorm:"type:varchar(100);not null" json:"title"`
	Required bool   `gorm:"not null;default:true" json:"required"`
	// min=1,max=1 means "pick exactly one"
	MinCount         int  `gorm:"not null;default:1" json:"min_count"`
	MaxCount         int  `gorm:"not null;default:1" json:"max_count"`
	AllowSwap        bool `gorm:"not null;default:true" json:"allow_swap"`
	DefaultProductID uint `gorm:"not null" json:"default_product_id"`

	AllowedProductsRaw   string `gorm:"column:allowed_product_ids;type:text" json:"-"`
	AllowedCategoriesRaw string `gorm:"column:allowed_category_ids;type:text" json:"-"`
	AllowedProductIDs    []uint `gorm:"-" json:"allowed_product_ids"`
	AllowedCategoryIDs   []uint `gorm:"-" json:"allowed_category_ids"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (s *ComboSlot) BeforeSave(tx *gorm.DB) error {
	var err error
	if s.AllowedProductsRaw, err = encodeIDList(s.AllowedProductIDs); err != nil {
		return err
	}
	if s.AllowedCategoriesRaw, err = encodeIDList(s.AllowedCategoryIDs); err != nil {
		return err
	}
	return nil
}

func (s *ComboSlot) AfterFind(tx *gorm.DB) error {
	s.AllowedProductIDs = decodeIDList(s.AllowedProductsRaw)
	s.AllowedCategoryIDs = decodeIDList(s.AllowedCategoriesRaw)
	return nil
}

func encodeIDList(ids []uint) (string, error) {
	if ids == nil {
		ids = []uint{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeIDList(raw string) []uint {
	if raw == "" {
		return nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}
