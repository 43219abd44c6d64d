package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminUpdateStatus_AppendsHistoryAndAudit(t *testing.T) {
	existing := fixtureOrder(1, "ORD-0001", baseDate, []model.OrderStatusHistory{
		historyAt(1, "Pending", baseDate),
	})

	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	ordersRepo.On("AppendStatus", mock.Anything, mock.MatchedBy(func(h model.OrderStatusHistory) bool {
		return h.OrderID == 1 && h.Status == "Shipping"
	})).Return(nil)

	audit := new(AuditLogRepoMock)
	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.ActorUserID == 99 &&
			l.Action == model.AuditActionUpdateOrderStatus &&
			l.ResourceType == model.AuditResourceOrder &&
			l.ResourceID == 1 &&
			l.BeforeJSON == `{"status":"Pending"}` &&
			l.AfterJSON == `{"status":"Shipping"}`
	})).Return(nil)

	uc := NewAdminOrderUsecase(newTxStub(&txReposStub{orders: ordersRepo, auditLogs: audit}))

	err := uc.UpdateStatus(context.Background(), 99, 1, AdminUpdateOrderStatusInput{Status: "Shipping"})
	assert.NoError(t, err)
	ordersRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestAdminUpdateStatus_CancellationRestocksLineItems(t *testing.T) {
	existing := fixtureOrder(1, "ORD-0001", baseDate, []model.OrderStatusHistory{
		historyAt(1, "Pending", baseDate),
	})
	existing.Items = []model.OrderItem{
		{ID: 1, OrderID: 1, ProductID: 9, Quantity: 2},
		{ID: 2, OrderID: 1, ProductID: 11, Quantity: 1},
	}

	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	ordersRepo.On("AppendStatus", mock.Anything, mock.Anything).Return(nil)

	products := new(ProductRepoMock)
	products.On("IncreaseStock", mock.Anything, int64(9), int64(2)).Return(nil)
	products.On("IncreaseStock", mock.Anything, int64(11), int64(1)).Return(nil)

	audit := new(AuditLogRepoMock)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewAdminOrderUsecase(newTxStub(&txReposStub{orders: ordersRepo, products: products, auditLogs: audit}))

	err := uc.UpdateStatus(context.Background(), 99, 1, AdminUpdateOrderStatusInput{Status: "Cancelled"})
	assert.NoError(t, err)
	products.AssertExpectations(t)
}

func TestAdminUpdateStatus_NoRestockUnlessEnteringCancelledBucket(t *testing.T) {
	cancelled := fixtureOrder(1, "ORD-0001", baseDate, []model.OrderStatusHistory{
		historyAt(1, "Cancelled", baseDate),
	})
	cancelled.Items = []model.OrderItem{{ID: 1, OrderID: 1, ProductID: 9, Quantity: 2}}

	shipping := fixtureOrder(2, "ORD-0002", baseDate, []model.OrderStatusHistory{
		historyAt(2, "Processing", baseDate),
	})
	shipping.Items = []model.OrderItem{{ID: 2, OrderID: 2, ProductID: 9, Quantity: 2}}

	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("FindByID", mock.Anything, int64(1)).Return(cancelled, nil)
	ordersRepo.On("FindByID", mock.Anything, int64(2)).Return(shipping, nil)
	ordersRepo.On("AppendStatus", mock.Anything, mock.Anything).Return(nil)

	products := new(ProductRepoMock)

	audit := new(AuditLogRepoMock)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewAdminOrderUsecase(newTxStub(&txReposStub{orders: ordersRepo, products: products, auditLogs: audit}))

	//already in the cancelled bucket: stock was returned on the first transition
	err := uc.UpdateStatus(context.Background(), 99, 1, AdminUpdateOrderStatusInput{Status: "Returned by customer"})
	assert.NoError(t, err)

	//a non-cancel transition never touches stock
	err = uc.UpdateStatus(context.Background(), 99, 2, AdminUpdateOrderStatusInput{Status: "Shipping"})
	assert.NoError(t, err)

	products.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUpdateStatus_AcceptsFreeTextLabels(t *testing.T) {
	existing := fixtureOrder(1, "ORD-0001", baseDate, nil)

	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("FindByID", mock.Anything, int64(1)).Return(existing, nil)
	ordersRepo.On("AppendStatus", mock.Anything, mock.MatchedBy(func(h model.OrderStatusHistory) bool {
		return h.Status == "Chờ đối soát"
	})).Return(nil)

	audit := new(AuditLogRepoMock)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewAdminOrderUsecase(newTxStub(&txReposStub{orders: ordersRepo, auditLogs: audit}))

	err := uc.UpdateStatus(context.Background(), 99, 1, AdminUpdateOrderStatusInput{Status: "Chờ đối soát"})
	assert.NoError(t, err)
}

func TestAdminUpdateStatus_Validation(t *testing.T) {
	uc := NewAdminOrderUsecase(newTxStub(&txReposStub{}))

	err := uc.UpdateStatus(context.Background(), 0, 1, AdminUpdateOrderStatusInput{Status: "Shipping"})
	he, _ := AsHTTPError(err)
	assert.Equal(t, http.StatusUnauthorized, he.Status)

	err = uc.UpdateStatus(context.Background(), 99, 0, AdminUpdateOrderStatusInput{Status: "Shipping"})
	he, _ = AsHTTPError(err)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	err = uc.UpdateStatus(context.Background(), 99, 1, AdminUpdateOrderStatusInput{Status: "   "})
	he, _ = AsHTTPError(err)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestAdminUpdateStatus_OrderNotFound(t *testing.T) {
	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("FindByID", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	uc := NewAdminOrderUsecase(newTxStub(&txReposStub{orders: ordersRepo}))

	err := uc.UpdateStatus(context.Background(), 99, 404, AdminUpdateOrderStatusInput{Status: "Shipping"})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestAdminList_NarrowsByOwnerAndRunsBucketPipeline(t *testing.T) {
	uid := int64(7)

	ordersRepo := new(OrderRepoMock)
	ordersRepo.On("ListAdmin", mock.Anything, mock.MatchedBy(func(f repo.AdminOrderListFilter) bool {
		return f.UserID != nil && *f.UserID == uid
	})).Return([]model.Order{
		fixtureOrder(1, "ORD-0001", baseDate, []model.OrderStatusHistory{historyAt(1, "Shipping", baseDate)}),
		fixtureOrder(2, "ORD-0002", baseDate.Add(time.Minute), []model.OrderStatusHistory{historyAt(2, "Cancelled", baseDate)}),
	}, nil)

	uc := NewAdminOrderUsecase(newTxStub(&txReposStub{orders: ordersRepo}))

	out, err := uc.List(context.Background(), AdminListOrdersInput{
		Status: "shipping", UserID: &uid, Page: 1, Limit: 50,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.TotalCount)
	assert.Equal(t, "ORD-0001", out.Orders[0].OrderNo)
	ordersRepo.AssertExpectations(t)
}

func TestAdminList_RejectsBadPaging(t *testing.T) {
	uc := NewAdminOrderUsecase(newTxStub(&txReposStub{}))

	_, err := uc.List(context.Background(), AdminListOrdersInput{Page: 0, Limit: 50})
	he, _ := AsHTTPError(err)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	_, err = uc.List(context.Background(), AdminListOrdersInput{Page: 1, Limit: 0})
	he, _ = AsHTTPError(err)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}
