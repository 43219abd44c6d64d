package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecordCallback_StoresPaymentOnly(t *testing.T) {
	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("FindByOrderNo", mock.Anything, "ORD-1001").
		Return(fixtureOrder(5, "ORD-1001", baseDate, nil), nil)

	payments := new(PaymentRepoMock)
	payments.On("ListByOrderID", mock.Anything, int64(5)).Return([]model.Payment{}, nil)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.OrderID == 5 &&
			p.Provider == "VNPAY" &&
			p.TransactionID == "VNP123456" &&
			p.Amount == 230000 &&
			p.Status == model.PaymentStatusCompleted
	})).Return(int64(77), nil)

	uc := NewPaymentUsecase(newTxStub(&txReposStub{orders: ordersRepo, payments: payments}))

	out, err := uc.RecordCallback(context.Background(), RecordPaymentInput{
		OrderNo:       "ORD-1001",
		Provider:      "VNPAY",
		TransactionID: "VNP123456",
		Amount:        230000,
		Status:        "Completed",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.PaymentID)
	assert.Equal(t, int64(5), out.OrderID)

	//a callback never writes status history; the listing override covers the gap
	ordersRepo.AssertNotCalled(t, "AppendStatus", mock.Anything, mock.Anything)
	payments.AssertExpectations(t)
}

func TestRecordCallback_RetriedTransactionStoredOnce(t *testing.T) {
	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("FindByOrderNo", mock.Anything, "ORD-1001").
		Return(fixtureOrder(5, "ORD-1001", baseDate, nil), nil)

	payments := new(PaymentRepoMock)
	payments.On("ListByOrderID", mock.Anything, int64(5)).Return([]model.Payment{
		{ID: 77, OrderID: 5, Provider: "VNPAY", TransactionID: "VNP123456", Amount: 230000, Status: model.PaymentStatusCompleted},
	}, nil)

	uc := NewPaymentUsecase(newTxStub(&txReposStub{orders: ordersRepo, payments: payments}))

	out, err := uc.RecordCallback(context.Background(), RecordPaymentInput{
		OrderNo:       "ORD-1001",
		Provider:      "VNPAY",
		TransactionID: "VNP123456",
		Amount:        230000,
		Status:        "Completed",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.PaymentID)
	assert.Equal(t, "Completed", out.Status)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordCallback_UnknownOrder(t *testing.T) {
	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("FindByOrderNo", mock.Anything, "ORD-NOPE").
		Return(model.Order{}, repo.ErrNotFound)

	uc := NewPaymentUsecase(newTxStub(&txReposStub{orders: ordersRepo}))

	_, err := uc.RecordCallback(context.Background(), RecordPaymentInput{
		OrderNo: "ORD-NOPE", Provider: "VNPAY", TransactionID: "X", Amount: 1000, Status: "Completed",
	})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestRecordCallback_Validation(t *testing.T) {
	uc := NewPaymentUsecase(newTxStub(&txReposStub{}))

	cases := []RecordPaymentInput{
		{OrderNo: "", Provider: "VNPAY", TransactionID: "X", Amount: 1000, Status: "Completed"},
		{OrderNo: "ORD-1", Provider: "", TransactionID: "X", Amount: 1000, Status: "Completed"},
		{OrderNo: "ORD-1", Provider: "VNPAY", TransactionID: "", Amount: 1000, Status: "Completed"},
		{OrderNo: "ORD-1", Provider: "VNPAY", TransactionID: "X", Amount: 0, Status: "Completed"},
		{OrderNo: "ORD-1", Provider: "VNPAY", TransactionID: "X", Amount: 1000, Status: "Paid"},
	}

	for _, in := range cases {
		_, err := uc.RecordCallback(context.Background(), in)
		he, ok := AsHTTPError(err)
		assert.True(t, ok, "input %+v", in)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
}
