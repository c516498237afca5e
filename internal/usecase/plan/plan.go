// Package plan cuida dos planos mensais e dos serviços incluídos em cada um.
package plan

import (
	shopdomain "github.com/BruksfildServices01/barber-admin/internal/domain/barbershop"
	plandomain "github.com/BruksfildServices01/barber-admin/internal/domain/plan"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

type Plans struct {
	usecase.Deps
	shops shopdomain.Repository
	repo  plandomain.Repository
}

func New(deps usecase.Deps, shops shopdomain.Repository, repo plandomain.Repository) *Plans {
	return &Plans{Deps: deps, shops: shops, repo: repo}
}

var staleViews = []invalidate.View{invalidate.ViewPlans, invalidate.ViewAppointments}

var (
	errPlanNotFound        = httperr.NotFound("plan_not_found", "Plano mensal não encontrado")
	errServiceNotFound     = httperr.NotFound("service_not_found", "Serviço não encontrado")
	errEntitlementNotFound = httperr.NotFound("plan_service_not_found", "Serviço do plano não encontrado")
	errShopNotFound        = httperr.NotFound("barbershop_not_found", "Barbearia não encontrada")
	errDuplicate           = httperr.Conflict("plan_service_exists", "Este serviço já está incluído neste plano mensal")
)

func validatePlanID(id uint) error {
	return usecase.RequireID(id, "invalid_plan_id", "ID do plano inválido")
}

func parseCategory(raw string) (models.PlanCategory, error) {
	c := models.PlanCategory(raw)
	if !c.Valid() {
		return "", httperr.Validation("invalid_category", "Categoria deve ser basic, premium ou plus")
	}
	return c, nil
}

func validateAllowedCount(n int) error {
	if n <= 0 {
		return httperr.Validation("invalid_allowed_count", "Quantidade permitida deve ser maior que zero")
	}
	return nil
}
