package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/orderstatus"
	repo "app/internal/repository"
)

type AdminOrderUsecase struct {
	tx repo.TransactionManager
}

func NewAdminOrderUsecase(tx repo.TransactionManager) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx}
}

type AdminListOrdersInput struct {
	Status string
	UserID *int64
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// List returns orders across all users with resolved statuses. The same
// bucket pipeline as the customer listing runs on top of the owner/date
// narrowing done in the repository.
func (u *AdminOrderUsecase) List(ctx context.Context, in AdminListOrdersInput) (OrderListOutput, error) {
	if in.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > maxPageSize {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAdmin(ctx, repo.AdminOrderListFilter{
			UserID: in.UserID,
			From:   in.From,
			To:     in.To,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = buildOrderListOutput(orders, ListOrdersInput{
			Status:   in.Status,
			Page:     in.Page,
			PageSize: in.Limit,
		})
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// UpdateStatus appends one history row with the new label and writes an audit
// entry. Existing history rows are never touched; the label stays free text
// at this boundary (bounded length only).
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorAdminUserID int64, orderID int64, in AdminUpdateOrderStatusInput) error {
	if actorAdminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := strings.TrimSpace(in.Status)
	if newStatus == "" || len(newStatus) > 50 {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		beforeStatus := orderstatus.Resolve(o.StatusHistories)

		//stock decremented at checkout is returned once, when the order first
		//transitions into the cancelled bucket
		if orderstatus.Classify(newStatus) == orderstatus.BucketCancelled &&
			orderstatus.Classify(beforeStatus) != orderstatus.BucketCancelled {
			for _, it := range o.Items {
				if err := r.Products().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}

		now := time.Now()
		if err := r.Orders().AppendStatus(ctx, model.OrderStatusHistory{
			OrderID:   orderID,
			Status:    newStatus,
			CreatedAt: now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		beforeJSON := `{"status":"` + beforeStatus + `"}`
		afterJSON := `{"status":"` + newStatus + `"}`
		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorUserID:  actorAdminUserID,
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   beforeJSON,
			AfterJSON:    afterJSON,
			CreatedAt:    now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})
}
