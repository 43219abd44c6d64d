package usecase

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/orderstatus"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10
	maxPageSize     = 100

	//the platform sells first-party only; every line shows the same store
	storeNamePlaceholder = "Cửa hàng chính hãng"
)

type OrderUsecase struct {
	tx          repo.TransactionManager
	shippingFee int64
}

func NewOrderUsecase(tx repo.TransactionManager, shippingFee int64) *OrderUsecase {
	return &OrderUsecase{tx: tx, shippingFee: shippingFee}
}

type ListOrdersInput struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

type OrderLineView struct {
	ProductID     int64  `json:"product_id"`
	CategoryID    int64  `json:"category_id"`
	Name          string `json:"name"`
	Quantity      int64  `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
	LineTotal     int64  `json:"line_total"`
	ImageURL      string `json:"image_url"`
	StoreName     string `json:"store_name"`
	IsGift        bool   `json:"is_gift"`
	HasVariations bool   `json:"has_variations"`
}

type OrderListItem struct {
	ID          int64           `json:"id"`
	OrderNo     string          `json:"order_no"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount int64           `json:"total_amount"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	Items       []OrderLineView `json:"items"`
}

type OrderListOutput struct {
	Orders     []OrderListItem `json:"orders"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

// ListMyOrders returns one page of the caller's orders, filtered by status
// bucket and free-text search. Only the given user's orders are visible.
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, in ListOrdersInput) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.Page < 1 {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.PageSize < 1 || in.PageSize > maxPageSize {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page_size")
	}

	var out OrderListOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = buildOrderListOutput(orders, in)
		return nil
	})

	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

// buildOrderListOutput is the filter pipeline: bucket predicate (with the
// completed-payment override), search, date-desc sort, count, then slice.
func buildOrderListOutput(orders []model.Order, in ListOrdersInput) OrderListOutput {
	f := orderstatus.ParseFilter(in.Status)

	matched := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		resolved := orderstatus.Resolve(o.StatusHistories)
		if !f.Matches(resolved, hasCompletedPayment(o.Payments)) {
			continue
		}
		if !matchesSearch(o, in.Search) {
			continue
		}
		matched = append(matched, o)
	}

	sortOrdersByDateDesc(matched)

	//total is counted before slicing
	total := len(matched)
	start := (in.Page - 1) * in.PageSize
	if start > total {
		start = total
	}
	end := start + in.PageSize
	if end > total {
		end = total
	}

	items := make([]OrderListItem, 0, end-start)
	for _, o := range matched[start:end] {
		items = append(items, toOrderListItem(o))
	}

	return OrderListOutput{
		Orders:     items,
		TotalCount: total,
		Page:       in.Page,
		PageSize:   in.PageSize,
	}
}

func hasCompletedPayment(payments []model.Payment) bool {
	for _, p := range payments {
		if p.Status == model.PaymentStatusCompleted {
			return true
		}
	}
	return false
}

// matchesSearch matches the order number or any line item's product name,
// case-insensitively. An empty search matches everything.
func matchesSearch(o model.Order, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.OrderNo), q) {
		return true
	}
	for _, it := range o.Items {
		if strings.Contains(strings.ToLower(it.ProductNameSnapshot), q) {
			return true
		}
	}
	return false
}

// sortOrdersByDateDesc sorts most recent first; equal dates break by
// descending ID so pagination stays reproducible.
func sortOrdersByDateDesc(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].OrderDate.After(orders[j].OrderDate)
		}
		return orders[i].ID > orders[j].ID
	})
}

func toOrderLineViews(items []model.OrderItem) []OrderLineView {
	lines := make([]OrderLineView, 0, len(items))
	for _, it := range items {
		lines = append(lines, OrderLineView{
			ProductID:     it.ProductID,
			CategoryID:    it.CategoryID,
			Name:          it.ProductNameSnapshot,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPriceSnapshot,
			LineTotal:     it.UnitPriceSnapshot * it.Quantity,
			ImageURL:      it.ImageURLSnapshot,
			StoreName:     storeNamePlaceholder,
			IsGift:        false,
			HasVariations: it.HasVariations,
		})
	}
	return lines
}

func toOrderListItem(o model.Order) OrderListItem {
	resolved := orderstatus.Resolve(o.StatusHistories)
	return OrderListItem{
		ID:          o.ID,
		OrderNo:     o.OrderNo,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Status:      resolved,
		StatusLabel: orderstatus.DisplayLabel(resolved),
		Items:       toOrderLineViews(o.Items),
	}
}

type PlaceOrderLineInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type PlaceOrderInput struct {
	Items           []PlaceOrderLineInput
	ShippingAddress string
	PromotionCode   string
}

type StatusHistoryView struct {
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentView struct {
	Provider      string    `json:"provider"`
	TransactionID string    `json:"transaction_id"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderDetailOutput struct {
	ID              int64               `json:"id"`
	OrderNo         string              `json:"order_no"`
	OrderDate       time.Time           `json:"order_date"`
	TotalAmount     int64               `json:"total_amount"`
	ShippingAmount  int64               `json:"shipping_amount"`
	DiscountAmount  int64               `json:"discount_amount"`
	ShippingAddress string              `json:"shipping_address"`
	Status          string              `json:"status"`
	StatusLabel     string              `json:"status_label"`
	Items           []OrderLineView     `json:"items"`
	History         []StatusHistoryView `json:"history"`
	Payments        []PaymentView       `json:"payments"`
}

// PlaceOrder creates an order from explicit lines: snapshots each product,
// decrements stock, applies an optional promotion code and writes the order,
// its items and the initial "Pending" history row in one transaction.
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderDetailOutput, error) {
	if userID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.Items) == 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "empty order")
	}
	addr := strings.TrimSpace(in.ShippingAddress)
	if addr == "" || len(addr) > 500 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid shipping_address")
	}
	for _, line := range in.Items {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item")
		}
	}

	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		orderItems := make([]model.OrderItem, 0, len(in.Items))
		var subtotal int64 = 0

		for _, line := range in.Items {
			p, err := r.Products().FindByID(ctx, line.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid product")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !p.IsActive {
				return NewHTTPError(http.StatusBadRequest, "invalid product")
			}

			ok, err := r.Products().DecreaseStockIfEnough(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "out of stock")
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:           p.ID,
				CategoryID:          p.CategoryID,
				ProductNameSnapshot: p.Name,
				ImageURLSnapshot:    p.ImageURL,
				HasVariations:       p.HasVariations,
				UnitPriceSnapshot:   p.Price,
				Quantity:            line.Quantity,
				CreatedAt:           now,
			})
			subtotal += p.Price * line.Quantity
		}

		var discount int64 = 0
		var promotionID *int64
		if code := strings.TrimSpace(in.PromotionCode); code != "" {
			promo, err := r.Promotions().FindByCode(ctx, code)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid promotion code")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			d, reason := promotionDiscount(promo, subtotal, now)
			if reason != "" {
				return NewHTTPError(http.StatusBadRequest, "promotion not applicable: "+reason)
			}
			discount = d
			promotionID = &promo.ID
		}

		total := subtotal + u.shippingFee - discount
		if total < 0 {
			total = 0
		}

		order := model.Order{
			UserID:          userID,
			OrderNo:         newOrderNo(),
			OrderDate:       now,
			TotalAmount:     total,
			ShippingAmount:  u.shippingFee,
			DiscountAmount:  discount,
			PromotionID:     promotionID,
			ShippingAddress: addr,
			Items:           orderItems,
			StatusHistories: []model.OrderStatusHistory{
				{Status: orderstatus.DefaultStatus, CreatedAt: now},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderDetailOutput(created)
		return nil
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}

// GetMyOrderDetail returns one order with its full history timeline.
// Other users' orders read as not found.
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderDetailOutput, error) {
	if userID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		out = toOrderDetailOutput(o)
		return nil
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}

func toOrderDetailOutput(o model.Order) OrderDetailOutput {
	resolved := orderstatus.Resolve(o.StatusHistories)

	history := make([]StatusHistoryView, 0, len(o.StatusHistories))
	for _, h := range o.StatusHistories {
		history = append(history, StatusHistoryView{
			Status:      h.Status,
			StatusLabel: orderstatus.DisplayLabel(h.Status),
			CreatedAt:   h.CreatedAt,
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.Before(history[j].CreatedAt)
	})

	payments := make([]PaymentView, 0, len(o.Payments))
	for _, p := range o.Payments {
		payments = append(payments, PaymentView{
			Provider:      p.Provider,
			TransactionID: p.TransactionID,
			Amount:        p.Amount,
			Status:        string(p.Status),
			CreatedAt:     p.CreatedAt,
		})
	}

	return OrderDetailOutput{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		OrderDate:       o.OrderDate,
		TotalAmount:     o.TotalAmount,
		ShippingAmount:  o.ShippingAmount,
		DiscountAmount:  o.DiscountAmount,
		ShippingAddress: o.ShippingAddress,
		Status:          resolved,
		StatusLabel:     orderstatus.DisplayLabel(resolved),
		Items:           toOrderLineViews(o.Items),
		History:         history,
		Payments:        payments,
	}
}

func newOrderNo() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
