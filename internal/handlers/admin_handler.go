package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/podoclinic/booking/internal/audit"
	"github.com/podoclinic/booking/internal/httperr"
	"github.com/podoclinic/booking/internal/httpresp"
	"github.com/podoclinic/booking/internal/models"
	ucAdmin "github.com/podoclinic/booking/internal/usecase/admin"
)

// AuditReader lists persisted audit entries.
type AuditReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	summary *ucAdmin.GetSummary
	health  *ucAdmin.GetHealth
	audit   AuditReader
	loc     *time.Location
}

func NewAdminHandler(
	summary *ucAdmin.GetSummary,
	health *ucAdmin.GetHealth,
	audit AuditReader,
	loc *time.Location,
) *AdminHandler {
	return &AdminHandler{
		summary: summary,
		health:  health,
		audit:   audit,
		loc:     loc,
	}
}

func (h *AdminHandler) Summary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "Nie udało się pobrać danych podsumowania")
		return
	}
	httpresp.OK(c, out)
}

func (h *AdminHandler) Health(c *gin.Context) {
	out, err := h.health.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "")
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) AuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Day filters, both inclusive
	// --------------------------------------------------
	if raw := c.Query("from"); raw != "" {
		if from, err := time.ParseInLocation("2006-01-02", raw, h.loc); err == nil {
			f.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.ParseInLocation("2006-01-02", raw, h.loc); err == nil {
			end := to.AddDate(0, 0, 1)
			f.To = &end
		}
	}

	logs, total, err := h.audit.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Nie udało się pobrać dziennika zdarzeń")
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
