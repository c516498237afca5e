package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/httpresp"
	"github.com/BruksfildServices01/barber-admin/internal/usecase/barber"
)

type BarberHandler struct {
	uc *barber.Barbers
}

func NewBarberHandler(uc *barber.Barbers) *BarberHandler {
	return &BarberHandler{uc: uc}
}

// --------- Requests ---------

// BarberRequest serve para JSON e multipart; a foto vem no campo "photo".
type BarberRequest struct {
	Name                *string `json:"name" form:"name"`
	BarbershopID        uint    `json:"barbershop_id" form:"barbershop_id"`
	WhatsApp            *string `json:"whatsapp" form:"whatsapp"`
	Instagram           *string `json:"instagram" form:"instagram"`
	OpeningTime         *string `json:"opening_time" form:"opening_time"`
	ClosingTime         *string `json:"closing_time" form:"closing_time"`
	CustomHours         *bool   `json:"custom_hours" form:"custom_hours"`
	ServicePauseMinutes *int    `json:"service_pause_minutes" form:"service_pause_minutes"`
}

// --------- Handlers ---------

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := bind(c, &req); err != nil {
		httpresp.Fail(c, err)
		return
	}

	file, err := photo(c)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	defer closeFile(file)

	in := barber.CreateInput{
		BarbershopID:        req.BarbershopID,
		WhatsApp:            req.WhatsApp,
		Instagram:           req.Instagram,
		OpeningTime:         req.OpeningTime,
		ClosingTime:         req.ClosingTime,
		ServicePauseMinutes: req.ServicePauseMinutes,
		Photo:               reader(file),
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.CustomHours != nil {
		in.CustomHours = *req.CustomHours
	}

	b, err := h.uc.Create(c.Request.Context(), actor(c), in)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.Created(c, "Barbeiro criado com sucesso", b)
}

// List aceita ?barbershop_id= para filtrar por barbearia.
func (h *BarberHandler) List(c *gin.Context) {
	shopID, filtered, err := queryID(c, "barbershop_id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	if filtered {
		h.listByShop(c, shopID)
		return
	}

	list, err := h.uc.List(c.Request.Context(), actor(c))
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", list)
}

func (h *BarberHandler) ListByShop(c *gin.Context) {
	shopID, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	h.listByShop(c, shopID)
}

func (h *BarberHandler) listByShop(c *gin.Context, shopID uint) {
	list, err := h.uc.ListByShop(c.Request.Context(), actor(c), shopID)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", list)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	b, err := h.uc.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "", b)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	var req BarberRequest
	if err := bind(c, &req); err != nil {
		httpresp.Fail(c, err)
		return
	}

	file, err := photo(c)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	defer closeFile(file)

	b, err := h.uc.Update(c.Request.Context(), actor(c), id, barber.UpdateInput{
		Name:                req.Name,
		WhatsApp:            req.WhatsApp,
		Instagram:           req.Instagram,
		OpeningTime:         req.OpeningTime,
		ClosingTime:         req.ClosingTime,
		CustomHours:         req.CustomHours,
		ServicePauseMinutes: req.ServicePauseMinutes,
		Photo:               reader(file),
	})
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Barbeiro atualizado com sucesso", b)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), actor(c), id); err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Barbeiro excluído com sucesso", nil)
}
