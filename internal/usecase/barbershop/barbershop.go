package barbershop

import (
	shopdomain "github.com/BruksfildServices01/barber-admin/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

// Profile cuida da barbearia e dos seus horários de funcionamento.
type Profile struct {
	usecase.Deps
	repo shopdomain.Repository
}

func New(deps usecase.Deps, repo shopdomain.Repository) *Profile {
	return &Profile{Deps: deps, repo: repo}
}

var staleViews = []invalidate.View{invalidate.ViewSettings, invalidate.ViewAppointments}

var (
	errShopNotFound  = httperr.NotFound("barbershop_not_found", "Barbearia não encontrada")
	errHoursNotFound = httperr.NotFound("operating_hours_not_found", "Horário de funcionamento não encontrado")
)
