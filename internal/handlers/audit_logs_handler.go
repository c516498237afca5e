package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-admin/internal/audit"
	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/httpresp"
	"github.com/BruksfildServices01/barber-admin/internal/timezone"
)

type AuditLogsHandler struct {
	logs  *audit.Logger
	guard *auth.Guard
	loc   *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, guard *auth.Guard, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, guard: guard, loc: loc}
}

// List aceita action, entity, from, to (YYYY-MM-DD no fuso da barbearia),
// page e limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	if err := h.guard.Authorize(actor(c)); err != nil {
		httpresp.Fail(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.ListFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	var err error
	if f.From, err = timezone.ParseDay(c.Query("from"), h.loc); err != nil {
		httpresp.Fail(c, httperr.Validation("invalid_date", "Data inicial inválida, use AAAA-MM-DD"))
		return
	}
	if f.To, err = timezone.ParseDay(c.Query("to"), h.loc); err != nil {
		httpresp.Fail(c, httperr.Validation("invalid_date", "Data final inválida, use AAAA-MM-DD"))
		return
	}

	result, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		log.Error().Err(err).Str("op", "audit.list").Msg("operation failed")
		httpresp.Fail(c, httperr.Internal(err))
		return
	}
	httpresp.OK(c, "", result)
}
