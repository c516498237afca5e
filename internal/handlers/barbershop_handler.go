package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/httpresp"
	"github.com/BruksfildServices01/barber-admin/internal/usecase/barbershop"
)

type BarbershopHandler struct {
	uc *barbershop.Profile
}

func NewBarbershopHandler(uc *barbershop.Profile) *BarbershopHandler {
	return &BarbershopHandler{uc: uc}
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	view, err := h.uc.GetProfile(c.Request.Context(), actor(c))
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "", view)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	var req barbershop.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}

	shop, err := h.uc.UpdateProfile(c.Request.Context(), actor(c), req)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Configurações atualizadas com sucesso", shop)
}

func (h *BarbershopHandler) ListOperatingHours(c *gin.Context) {
	hours, err := h.uc.ListOperatingHours(c.Request.Context(), actor(c))
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", hours)
}

func (h *BarbershopHandler) UpdateOperatingHours(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	var req barbershop.UpdateOperatingHoursInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}

	row, err := h.uc.UpdateOperatingHours(c.Request.Context(), actor(c), id, req)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Horário atualizado com sucesso", row)
}
