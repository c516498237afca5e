package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-admin/internal/httpresp"
	"github.com/BruksfildServices01/barber-admin/internal/money"
	"github.com/BruksfildServices01/barber-admin/internal/usecase/catalog"
)

type ProductHandler struct {
	uc *catalog.Catalog
}

func NewProductHandler(uc *catalog.Catalog) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// --------- Requests ---------

type ProductRequest struct {
	Name         *string     `json:"name" form:"name"`
	Price        *money.Text `json:"price" form:"price"`
	BarbershopID uint        `json:"barbershop_id" form:"barbershop_id"`
	Description  *string     `json:"description" form:"description"`
}

// --------- Handlers ---------

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
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

	in := catalog.CreateProductInput{
		BarbershopID: req.BarbershopID,
		Description:  req.Description,
		Photo:        reader(file),
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Price != nil {
		in.Price = *req.Price
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), actor(c), in)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.Created(c, "Produto criado com sucesso", p)
}

func (h *ProductHandler) List(c *gin.Context) {
	shopID, filtered, err := queryID(c, "barbershop_id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	if filtered {
		h.listByShop(c, shopID)
		return
	}

	list, err := h.uc.ListProducts(c.Request.Context(), actor(c))
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", list)
}

func (h *ProductHandler) ListByShop(c *gin.Context) {
	shopID, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	h.listByShop(c, shopID)
}

func (h *ProductHandler) listByShop(c *gin.Context, shopID uint) {
	list, err := h.uc.ListProductsByShop(c.Request.Context(), actor(c), shopID)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.List(c, "", list)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), actor(c), id)
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "", p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	var req ProductRequest
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

	p, err := h.uc.UpdateProduct(c.Request.Context(), actor(c), id, catalog.UpdateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Photo:       reader(file),
	})
	if err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Produto atualizado com sucesso", p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httpresp.Fail(c, err)
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), actor(c), id); err != nil {
		httpresp.Fail(c, err)
		return
	}
	httpresp.OK(c, "Produto excluído com sucesso", nil)
}
