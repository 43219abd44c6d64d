package repository

import "context"

// TxRepos is the set of repositories available inside one transaction.
type TxRepos interface {
	Orders() OrderRepository
	Payments() PaymentRepository
	Products() ProductRepository
	Promotions() PromotionRepository
	AuditLogs() AuditLogRepository
}

// TransactionManager hides begin/commit/rollback from the usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
