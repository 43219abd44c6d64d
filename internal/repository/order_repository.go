package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// AdminOrderListFilter narrows the admin listing by owner and date range.
// Status filtering happens after resolution, in the usecase layer.
type AdminOrderListFilter struct {
	UserID *int64
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	//loads the order with items, status histories and payments
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	FindByOrderNo(ctx context.Context, orderNo string) (model.Order, error)

	//loads all of one user's orders with associations preloaded
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, error)

	//creates the order together with its items and initial history rows
	Create(ctx context.Context, order model.Order) (int64, error)

	//appends one history row; history rows are never updated or deleted
	AppendStatus(ctx context.Context, h model.OrderStatusHistory) error
}
