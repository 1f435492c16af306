package models

import (
	"encoding/json"
	"time"
)

// OrderItem is a persisted cart line. Option and slot choices are
// snapshotted as JSON so the ticket stays readable even after the
// catalog changes.
type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	ProductID *uint `gorm:"index" json:"product_id,omitempty"`
	ComboID   *uint `gorm:"index" json:"combo_id,omitempty"`

	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Notes      string  `gorm:"type:text" json:"notes"`
	IsCombo    bool    `gorm:"not null;default:false" json:"is_combo"`

	OptionsRaw string `gorm:"column:selected_options;type:text" json:"-"`
	SlotsRaw   string `gorm:"column:slot_selections;type:text" json:"-"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// OptionSnapshot is one selected option on a line, priced as the
// delta it contributed.
type OptionSnapshot struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SlotSnapshot is one concrete slot choice on a combo line.
type SlotSnapshot struct {
	SlotID      uint    `json:"slot_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (oi *OrderItem) SetOptions(opts []OptionSnapshot) error {
	raw, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	oi.OptionsRaw = string(raw)
	return nil
}

func (oi *OrderItem) GetOptions() []OptionSnapshot {
	if oi.OptionsRaw == "" {
		return nil
	}
	var opts []OptionSnapshot
	if err := json.Unmarshal([]byte(oi.OptionsRaw), &opts); err != nil {
		return nil
	}
	return opts
}

func (oi *OrderItem) SetSlots(slots []SlotSnapshot) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	oi.SlotsRaw = string(raw)
	return nil
}

func (oi *OrderItem) GetSlots() []SlotSnapshot {
	if oi.SlotsRaw == "" {
		return nil
	}
	var slots []SlotSnapshot
	if err := json.Unmarshal([]byte(oi.SlotsRaw), &slots); err != nil {
		return nil
	}
	return slots
}
