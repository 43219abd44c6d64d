package model

import "time"

type OrderItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"not null;index" json:"order_id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`

	//denormalized from the product at order time
	CategoryID          int64  `gorm:"not null" json:"category_id"`
	ProductNameSnapshot string `gorm:"type:varchar(255);not null" json:"product_name_snapshot"`
	ImageURLSnapshot    string `gorm:"type:varchar(500)" json:"image_url_snapshot"`
	HasVariations       bool   `gorm:"not null;default:false" json:"has_variations"`

	UnitPriceSnapshot int64     `gorm:"not null" json:"unit_price_snapshot"`
	Quantity          int64     `gorm:"not null" json:"quantity"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
