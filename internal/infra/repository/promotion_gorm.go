package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PromotionGormRepository struct {
	db *gorm.DB
}

func NewPromotionGormRepository(db *gorm.DB) *PromotionGormRepository {
	return &PromotionGormRepository{db: db}
}

func (r *PromotionGormRepository) FindByCode(ctx context.Context, code string) (model.Promotion, error) {
	var p model.Promotion
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Promotion{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Promotion{}, err
	}
	return p, nil
}
