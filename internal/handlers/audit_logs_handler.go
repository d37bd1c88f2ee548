package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

// maxAuditPage keeps the computed offset well inside int range.
const maxAuditPage = 100000

type AuditLogsHandler struct {
	repo booking.AuditRepository
}

func NewAuditLogsHandler(repo booking.AuditRepository) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

// List answers GET /audit-logs?action=&entity=&entity_id=&page=&limit=,
// newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	if page > maxAuditPage {
		page = maxAuditPage
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	filter := booking.AuditFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if raw := c.Query("entity_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.Validation(c, httperr.Invalid("entity_id", "must be a valid UUID"))
			return
		}
		filter.EntityID = &id
	}

	logs, total, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		storeError(c, "audit_log", err)
		return
	}

	httpresp.OK(c, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
