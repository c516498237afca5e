package barbershop

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

// UpdateProfileInput: nil significa "não alterar".
type UpdateProfileInput struct {
	Name                *string `json:"name"`
	LoyaltyEnabled      *bool   `json:"loyalty_enabled"`
	LoyaltyTarget       *int    `json:"loyalty_target"`
	ServicePauseMinutes *int    `json:"service_pause_minutes"`
}

func (uc *Profile) UpdateProfile(ctx context.Context, actor *auth.User, in UpdateProfileInput) (*models.Barbershop, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}

	fields := domain.Fields{}

	if in.Name != nil {
		name, err := usecase.RequiredText(*in.Name, "name_required", "Nome da barbearia é obrigatório")
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if in.LoyaltyEnabled != nil {
		fields["loyalty_enabled"] = *in.LoyaltyEnabled
	}
	if in.LoyaltyTarget != nil {
		if *in.LoyaltyTarget < 0 {
			return nil, httperr.Validation("invalid_loyalty_target", "Meta de fidelidade não pode ser negativa")
		}
		fields["loyalty_target"] = *in.LoyaltyTarget
	}
	if in.ServicePauseMinutes != nil {
		if *in.ServicePauseMinutes < 0 {
			return nil, httperr.Validation("invalid_service_pause", "Pausa entre atendimentos não pode ser negativa")
		}
		fields["service_pause_minutes"] = *in.ServicePauseMinutes
	}

	shop, err := uc.repo.UpdateTheOnlyShop(ctx, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errShopNotFound
		}
		return nil, usecase.Internal("barbershop.update_profile", err)
	}

	uc.DoneIfChanged(ctx, actor, fields, usecase.Mutation{
		Action:   "barbershop.updated",
		Entity:   "barbershop",
		EntityID: shop.ID,
		Metadata: in,
		Views:    staleViews,
	})

	return shop, nil
}
