package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// txManagerStub runs the callback against a fixed set of repos.
type txManagerStub struct {
	repos repo.TxRepos
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

type txReposStub struct {
	orders     repo.OrderRepository
	payments   repo.PaymentRepository
	products   repo.ProductRepository
	promotions repo.PromotionRepository
	auditLogs  repo.AuditLogRepository
}

func (r *txReposStub) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposStub) Payments() repo.PaymentRepository     { return r.payments }
func (r *txReposStub) Products() repo.ProductRepository     { return r.products }
func (r *txReposStub) Promotions() repo.PromotionRepository { return r.promotions }
func (r *txReposStub) AuditLogs() repo.AuditLogRepository   { return r.auditLogs }

func newTxStub(repos *txReposStub) *txManagerStub {
	return &txManagerStub{repos: repos}
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByOrderNo(ctx context.Context, orderNo string) (model.Order, error) {
	args := m.Called(ctx, orderNo)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) AppendStatus(ctx context.Context, h model.OrderStatusHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, p model.Payment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PaymentRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error) {
	args := m.Called(ctx, orderID)
	payments, _ := args.Get(0).([]model.Payment)
	return payments, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type PromotionRepoMock struct{ mock.Mock }

func (m *PromotionRepoMock) FindByCode(ctx context.Context, code string) (model.Promotion, error) {
	args := m.Called(ctx, code)
	p, _ := args.Get(0).(model.Promotion)
	return p, args.Error(1)
}

type AuditLogRepoMock struct{ mock.Mock }

func (m *AuditLogRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditLogRepoMock) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, f)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}
