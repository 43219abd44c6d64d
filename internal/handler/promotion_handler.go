package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PromotionHandler struct {
	uc *usecase.PromotionUsecase
}

func NewPromotionHandler(uc *usecase.PromotionUsecase) *PromotionHandler {
	return &PromotionHandler{uc: uc}
}

func (h *PromotionHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/promotions/validate", h.validate)
}

func (h *PromotionHandler) validate(c echo.Context) error {
	subtotal, err := strconv.ParseInt(c.QueryParam("subtotal"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subtotal"})
	}

	out, err := h.uc.Validate(c.Request().Context(), usecase.ValidatePromotionInput{
		Code:     c.QueryParam("code"),
		Subtotal: subtotal,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
