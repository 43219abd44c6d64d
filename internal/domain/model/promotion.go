package model

import "time"

// Promotion is a coupon applied at checkout. Exactly one of DiscountPercent
// and DiscountAmount is meaningful: percent wins when it is non-zero.
type Promotion struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code            string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Description     string    `gorm:"type:varchar(255)" json:"description"`
	DiscountPercent int64     `gorm:"not null;default:0" json:"discount_percent"`
	DiscountAmount  int64     `gorm:"not null;default:0" json:"discount_amount"`
	MinSubtotal     int64     `gorm:"not null;default:0" json:"min_subtotal"`
	StartsAt        time.Time `gorm:"not null" json:"starts_at"`
	EndsAt          time.Time `gorm:"not null" json:"ends_at"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
