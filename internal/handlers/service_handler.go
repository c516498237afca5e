package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/httpresp"
	"github.com/BruksfildServices01/barber-admin/internal/usecase/catalog"
)

type ServiceHandler struct {
	uc *catalog.Catalog
}

func NewServiceHandler(uc *catalog.Catalog) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req catalog.CreateServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}

	s, err := h.uc.CreateService(c.Request.Context(), actor(c), req)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.Created(c, "Serviço criado com sucesso", s)
}

func (h *ServiceHandler) List(c *gin.Context) {
	shopID, filtered, err := queryID(c, "barbershop_id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	if filtered {
		h.listByShop(c, shopID)
		return
	}

	list, err := h.uc.ListServices(c.Request.Context(), actor(c))
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", list)
}

func (h *ServiceHandler) ListByShop(c *gin.Context) {
	shopID, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	h.listByShop(c, shopID)
}

func (h *ServiceHandler) listByShop(c *gin.Context, shopID uint) {
	list, err := h.uc.ListServicesByShop(c.Request.Context(), actor(c), shopID)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", list)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	s, err := h.uc.GetService(c.Request.Context(), actor(c), id)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "", s)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	var req catalog.UpdateServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Fail(c, invalidRequest(err))
		return
	}

	s, err := h.uc.UpdateService(c.Request.Context(), actor(c), id, req)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Serviço atualizado com sucesso", s)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	if err := h.uc.DeleteService(c.Request.Context(), actor(c), id); err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Serviço excluído com sucesso", nil)
}
