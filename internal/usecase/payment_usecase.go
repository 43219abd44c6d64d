package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type PaymentUsecase struct {
	tx repo.TransactionManager
}

func NewPaymentUsecase(tx repo.TransactionManager) *PaymentUsecase {
	return &PaymentUsecase{tx: tx}
}

type RecordPaymentInput struct {
	OrderNo       string
	Provider      string
	TransactionID string
	Amount        int64
	Status        string
}

type RecordPaymentOutput struct {
	PaymentID int64  `json:"payment_id"`
	OrderID   int64  `json:"order_id"`
	Status    string `json:"status"`
}

// RecordCallback stores one gateway result for an order. It deliberately
// writes only the payment row and never a status history entry: payment
// state and status history are tracked separately, and the listing's
// waiting-for-payment override bridges the gap.
func (u *PaymentUsecase) RecordCallback(ctx context.Context, in RecordPaymentInput) (RecordPaymentOutput, error) {
	orderNo := strings.TrimSpace(in.OrderNo)
	if orderNo == "" {
		return RecordPaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order_no")
	}
	provider := strings.TrimSpace(in.Provider)
	if provider == "" || len(provider) > 50 {
		return RecordPaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid provider")
	}
	txID := strings.TrimSpace(in.TransactionID)
	if txID == "" || len(txID) > 100 {
		return RecordPaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid transaction_id")
	}
	if in.Amount <= 0 {
		return RecordPaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid amount")
	}

	status := model.PaymentStatus(strings.TrimSpace(in.Status))
	switch status {
	case model.PaymentStatusPending, model.PaymentStatusCompleted, model.PaymentStatusFailed:
	default:
		return RecordPaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out RecordPaymentOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByOrderNo(ctx, orderNo)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//gateways retry callbacks; the same transaction is stored once
		existing, err := r.Payments().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		for _, p := range existing {
			if p.Provider == provider && p.TransactionID == txID {
				out = RecordPaymentOutput{
					PaymentID: p.ID,
					OrderID:   o.ID,
					Status:    string(p.Status),
				}
				return nil
			}
		}

		paymentID, err := r.Payments().Create(ctx, model.Payment{
			OrderID:       o.ID,
			Provider:      provider,
			TransactionID: txID,
			Amount:        in.Amount,
			Status:        status,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = RecordPaymentOutput{
			PaymentID: paymentID,
			OrderID:   o.ID,
			Status:    string(status),
		}
		return nil
	})

	if err != nil {
		return RecordPaymentOutput{}, err
	}
	return out, nil
}
