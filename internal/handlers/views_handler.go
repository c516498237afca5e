package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/httpresp"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
)

type ViewsHandler struct {
	stale invalidate.Signaler
	guard *auth.Guard
}

func NewViewsHandler(stale invalidate.Signaler, guard *auth.Guard) *ViewsHandler {
	return &ViewsHandler{stale: stale, guard: guard}
}

type RevalidateRequest struct {
	Views []string `json:"views"`
}

// Revalidate marca telas como desatualizadas; sem lista, marca todas.
func (h *ViewsHandler) Revalidate(c *gin.Context) {
	if err := h.guard.Authorize(actor(c)); err != nil {
		httpresp.Fail(c, err)
		return
	}

	var req RevalidateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httpresp.Fail(c, invalidRequest(err))
			return
		}
	}

	views := make([]invalidate.View, 0, len(req.Views))
	for _, raw := range req.Views {
		v, ok := invalidate.ParseView(raw)
		if !ok {
			httpresp.Fail(c, httperr.Validation("unknown_view", "Tela desconhecida: "+raw))
			return
		}
		views = append(views, v)
	}
	if len(views) == 0 {
		views = invalidate.Views
	}

	h.stale.Stale(c.Request.Context(), views...)
	httpresp.OK(c, "Telas marcadas para atualização", gin.H{"views": views})
}

// Version é consultada pelo painel para saber se precisa recarregar.
func (h *ViewsHandler) Version(c *gin.Context) {
	v, ok := invalidate.ParseView(c.Param("view"))
	if !ok {
		httpresp.Fail(c, httperr.NotFound("unknown_view", "Tela desconhecida"))
		return
	}

	version, err := h.stale.Version(c.Request.Context(), v)
	if err != nil {
		httpresp.Fail(c, httperr.Internal(err))
		return
	}
	httpresp.OK(c, "", gin.H{"view": v, "version": version})
}
