package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminAuditLogHandler struct {
	uc *usecase.AdminAuditLogUsecase
}

func NewAdminAuditLogHandler(uc *usecase.AdminAuditLogUsecase) *AdminAuditLogHandler {
	return &AdminAuditLogHandler{uc: uc}
}

func (h *AdminAuditLogHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/audit-logs")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("", h.list)
}

func (h *AdminAuditLogHandler) list(c echo.Context) error {
	in := usecase.AdminListAuditLogsInput{
		Action:       c.QueryParam("action"),
		ResourceType: c.QueryParam("resource_type"),
		Page:         intQueryParam(c, "page", 1),
		Limit:        intQueryParam(c, "limit", 50),
	}

	if raw := c.QueryParam("actor_user_id"); raw != "" {
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid actor_user_id"})
		}
		in.ActorUserID = &uid
	}
	if raw := c.QueryParam("resource_id"); raw != "" {
		rid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid resource_id"})
		}
		in.ResourceID = &rid
	}

	from, err := dateTimeQueryParam(c, "from")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
	}
	in.From = from

	to, err := dateTimeQueryParam(c, "to")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
	}
	in.To = to

	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
