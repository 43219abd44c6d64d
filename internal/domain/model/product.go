package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID    int64          `gorm:"not null;index" json:"category_id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Price         int64          `gorm:"not null" json:"price"`
	Stock         int64          `gorm:"not null" json:"stock"`
	ImageURL      string         `gorm:"type:varchar(500)" json:"image_url"`
	HasVariations bool           `gorm:"not null;default:false" json:"has_variations"`
	IsActive      bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
