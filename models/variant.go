package models

import "time"

// VariantGroup is a single-select group of options on a product
// (size, crust, flavor). Exactly one option is active at a time.
type VariantGroup struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Options   []VariantOption `gorm:"foreignKey:GroupID" json:"options"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

type VariantOption struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	GroupID uint   `gorm:"not null;index" json:"group_id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	// Signed delta on the base price. Variants are the only place a
	// selection may lower the price.
	PriceModifier float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price_modifier"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
