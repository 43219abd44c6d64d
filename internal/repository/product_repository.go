package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProductRepository interface {
	FindByID(ctx context.Context, productID int64) (model.Product, error)

	//decrements stock only when qty is available; false means insufficient stock
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
	IncreaseStock(ctx context.Context, productID int64, qty int64) error
}
