package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	authH *handler.AuthHandler,
	orderH *handler.OrderHandler,
	adminOrderH *handler.AdminOrderHandler,
	adminAuditLogH *handler.AdminAuditLogHandler,
	paymentH *handler.PaymentHandler,
	promotionH *handler.PromotionHandler,
) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	authH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)
	adminOrderH.RegisterRoutes(e, cfg)
	adminAuditLogH.RegisterRoutes(e, cfg)
	paymentH.RegisterRoutes(e)
	promotionH.RegisterRoutes(e)
}
