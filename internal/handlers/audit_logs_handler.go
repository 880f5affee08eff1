package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-sousa/agenda-api/internal/audit"
	"github.com/barbearia-sousa/agenda-api/internal/httperr"
	"github.com/barbearia-sousa/agenda-api/internal/httpresp"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.logger.ListRecent(limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, entries)
}
