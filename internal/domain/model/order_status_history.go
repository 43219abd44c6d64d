package model

import "time"

// OrderStatusHistory is append-only: rows are created when an order changes
// status and never updated or deleted afterwards. The label is free text at
// the storage boundary; bucket classification happens in internal/orderstatus.
type OrderStatusHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	Status    string    `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
