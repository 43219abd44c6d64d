package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AdminAuditLogUsecase struct {
	auditLogs repo.AuditLogRepository
}

func NewAdminAuditLogUsecase(auditLogs repo.AuditLogRepository) *AdminAuditLogUsecase {
	return &AdminAuditLogUsecase{auditLogs: auditLogs}
}

type AdminListAuditLogsInput struct {
	ActorUserID  *int64
	Action       string
	ResourceType string
	ResourceID   *int64
	From         *time.Time
	To           *time.Time
	Page         int
	Limit        int
}

type AuditLogListOutput struct {
	Logs  []model.AuditLog `json:"logs"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// List returns audit entries newest first, narrowed by the optional filters.
func (u *AdminAuditLogUsecase) List(ctx context.Context, in AdminListAuditLogsInput) (AuditLogListOutput, error) {
	if in.Page < 1 {
		return AuditLogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > maxPageSize {
		return AuditLogListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	f := repo.AuditLogFilter{
		ActorUserID: in.ActorUserID,
		ResourceID:  in.ResourceID,
		CreatedFrom: in.From,
		CreatedTo:   in.To,
		Limit:       in.Limit,
		Offset:      (in.Page - 1) * in.Limit,
	}
	if a := strings.TrimSpace(in.Action); a != "" {
		action := model.AuditAction(a)
		f.Action = &action
	}
	if rt := strings.TrimSpace(in.ResourceType); rt != "" {
		resourceType := model.AuditResourceType(rt)
		f.ResourceType = &resourceType
	}

	logs, err := u.auditLogs.List(ctx, f)
	if err != nil {
		return AuditLogListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AuditLogListOutput{Logs: logs, Page: in.Page, Limit: in.Limit}, nil
}
