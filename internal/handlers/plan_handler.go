package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/httpresp"
	"github.com/BruksfildServices01/barber-admin/internal/usecase/plan"
)

type PlanHandler struct {
	uc *plan.Plans
}

func NewPlanHandler(uc *plan.Plans) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// --------- Requests ---------

type UpdateEntitlementRequest struct {
	AllowedCount int `json:"allowed_count"`
}

// --------- Plans ---------

func (h *PlanHandler) Create(c *gin.Context) {
	var req plan.CreatePlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}

	p, err := h.uc.CreatePlan(c.Request.Context(), actor(c), req)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.Created(c, "Plano mensal criado com sucesso", p)
}

func (h *PlanHandler) List(c *gin.Context) {
	shopID, filtered, err := queryID(c, "barbershop_id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	if filtered {
		h.listByShop(c, shopID)
		return
	}

	list, err := h.uc.ListPlans(c.Request.Context(), actor(c))
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", list)
}

func (h *PlanHandler) ListByShop(c *gin.Context) {
	shopID, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	h.listByShop(c, shopID)
}

func (h *PlanHandler) listByShop(c *gin.Context, shopID uint) {
	list, err := h.uc.ListPlansByShop(c.Request.Context(), actor(c), shopID)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", list)
}

func (h *PlanHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	p, err := h.uc.GetPlan(c.Request.Context(), actor(c), id)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "", p)
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	var req plan.UpdatePlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}

	p, err := h.uc.UpdatePlan(c.Request.Context(), actor(c), id, req)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Plano mensal atualizado com sucesso", p)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	if err := h.uc.DeletePlan(c.Request.Context(), actor(c), id); err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Plano mensal excluído com sucesso", nil)
}

// --------- Entitlements ---------

// CreateEntitlement aceita plan_id no corpo ou na rota /plans/:id/services.
func (h *PlanHandler) CreateEntitlement(c *gin.Context) {
	var req plan.CreateEntitlementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}
	if c.Param("id") != "" {
		id, err := pathID(c, "id")
		if err != nil {
			httpresp.Fail(c, err)
			return
		}
		req.PlanID = id
	}

	e, err := h.uc.CreateEntitlement(c.Request.Context(), actor(c), req)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.Created(c, "Serviço adicionado ao plano com sucesso", e)
}

func (h *PlanHandler) UpdateEntitlement(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	var req UpdateEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}

	e, err := h.uc.UpdateEntitlementCount(c.Request.Context(), actor(c), id, req.AllowedCount)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Quantidade atualizada com sucesso", e)
}

func (h *PlanHandler) DeleteEntitlement(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	if err := h.uc.DeleteEntitlement(c.Request.Context(), actor(c), id); err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Serviço removido do plano com sucesso", nil)
}
