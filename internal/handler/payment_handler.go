package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Callbacks come from the payment gateway, not from a logged-in user,
// so this route sits outside the JWT group.
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/payments/callback", h.callback)
}

type PaymentCallbackRequest struct {
	OrderNo       string `json:"order_no"`
	Provider      string `json:"provider"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}

func (h *PaymentHandler) callback(c echo.Context) error {
	var req PaymentCallbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.RecordCallback(c.Request().Context(), usecase.RecordPaymentInput{
		OrderNo:       req.OrderNo,
		Provider:      req.Provider,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Status:        req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
