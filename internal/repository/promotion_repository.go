package repository

import (
	"context"

	"app/internal/domain/model"
)

type PromotionRepository interface {
	FindByCode(ctx context.Context, code string) (model.Promotion, error)
}
