package model

import "time"

type Order struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	//human-facing number, unique and immutable after creation
	OrderNo string `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_no"`

	OrderDate       time.Time `gorm:"not null;index" json:"order_date"`
	TotalAmount     int64     `gorm:"not null" json:"total_amount"`
	ShippingAmount  int64     `gorm:"not null" json:"shipping_amount"`
	DiscountAmount  int64     `gorm:"not null" json:"discount_amount"`
	PromotionID     *int64    `gorm:"index" json:"promotion_id,omitempty"`
	ShippingAddress string    `gorm:"type:varchar(500);not null" json:"shipping_address"`

	Items           []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	StatusHistories []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"status_histories"`
	Payments        []Payment            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
