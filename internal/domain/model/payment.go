package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// Payment is one gateway result for an order. Payment state is tracked
// separately from the status history; the two are allowed to disagree.
type Payment struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       int64         `gorm:"not null;index" json:"order_id"`
	Provider      string        `gorm:"type:varchar(50);not null" json:"provider"`
	TransactionID string        `gorm:"type:varchar(100);not null" json:"transaction_id"`
	Amount        int64         `gorm:"not null" json:"amount"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt     time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
}
