package models

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	CashierID   uint        `gorm:"not null;index" json:"cashier_id"`
	Cashier     User        `gorm:"foreignKey:CashierID" json:"-"`
	Status      string      `gorm:"type:varchar(20);not null;default:'received'" json:"status"`
	TableNumber int         `json:"table_number"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}
