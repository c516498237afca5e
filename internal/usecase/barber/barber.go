package barber

import (
	barberdomain "github.com/BruksfildServices01/barber-admin/internal/domain/barber"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
	"github.com/BruksfildServices01/barber-admin/internal/validators"
)

type Barbers struct {
	usecase.Deps
	repo     barberdomain.Repository
	uploader storage.Uploader
}

func New(deps usecase.Deps, repo barberdomain.Repository, uploader storage.Uploader) *Barbers {
	return &Barbers{Deps: deps, repo: repo, uploader: uploader}
}

var staleViews = []invalidate.View{invalidate.ViewBarbers, invalidate.ViewAppointments}

var (
	errBarberNotFound = httperr.NotFound("barber_not_found", "Barbeiro não encontrado")
	errShopNotFound   = httperr.NotFound("barbershop_not_found", "Barbearia não encontrada")
)

func validateID(id uint) error {
	return usecase.RequireID(id, "invalid_barber_id", "ID do barbeiro inválido")
}

// optionalTime: vazio vira NULL, qualquer outro valor precisa ser HH:MM.
func optionalTime(raw *string, field, label string) (*string, error) {
	v := usecase.Nullable(raw)
	if v == nil {
		return nil, nil
	}
	normalized, ok := validators.NormalizeTimeOfDay(*v)
	if !ok {
		return nil, httperr.Validation("invalid_"+field, label+" inválido, use HH:MM")
	}
	return &normalized, nil
}

func validatePause(p *int) error {
	if p != nil && *p < 0 {
		return httperr.Validation("invalid_service_pause", "Pausa entre atendimentos não pode ser negativa")
	}
	return nil
}

func value(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
