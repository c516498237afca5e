// Package catalog cobre o que a barbearia vende: serviços e produtos.
package catalog

import (
	shopdomain "github.com/BruksfildServices01/barber-admin/internal/domain/barbershop"
	catalogdomain "github.com/BruksfildServices01/barber-admin/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

type Catalog struct {
	usecase.Deps
	shops    shopdomain.Repository
	services catalogdomain.ServiceRepository
	products catalogdomain.ProductRepository
	uploader storage.Uploader
}

func New(
	deps usecase.Deps,
	shops shopdomain.Repository,
	services catalogdomain.ServiceRepository,
	products catalogdomain.ProductRepository,
	uploader storage.Uploader,
) *Catalog {
	return &Catalog{
		Deps:     deps,
		shops:    shops,
		services: services,
		products: products,
		uploader: uploader,
	}
}

var (
	serviceViews = []invalidate.View{invalidate.ViewServices, invalidate.ViewAppointments}
	productViews = []invalidate.View{invalidate.ViewProducts}
)

var (
	errServiceNotFound = httperr.NotFound("service_not_found", "Serviço não encontrado")
	errProductNotFound = httperr.NotFound("product_not_found", "Produto não encontrado")
	errShopNotFound    = httperr.NotFound("barbershop_not_found", "Barbearia não encontrada")
)

func validateShopID(id uint) error {
	return usecase.RequireID(id, "invalid_barbershop_id", "ID da barbearia inválido")
}
