package barbershop

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
	"github.com/BruksfildServices01/barber-admin/internal/validators"
)

func (uc *Profile) ListOperatingHours(ctx context.Context, actor *auth.User) ([]models.OperatingHours, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetTheOnlyShop(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errShopNotFound
		}
		return nil, usecase.Internal("barbershop.list_hours", err)
	}

	hours, err := uc.repo.ListOperatingHours(ctx, shop.ID)
	if err != nil {
		return nil, usecase.Internal("barbershop.list_hours", err)
	}
	return hours, nil
}

type UpdateOperatingHoursInput struct {
	OpeningTime *string `json:"opening_time"`
	ClosingTime *string `json:"closing_time"`
	Open        *bool   `json:"open"`
}

func (uc *Profile) UpdateOperatingHours(ctx context.Context, actor *auth.User, id uint, in UpdateOperatingHoursInput) (*models.OperatingHours, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := usecase.RequireID(id, "invalid_operating_hours_id", "ID do horário inválido"); err != nil {
		return nil, err
	}

	fields := domain.Fields{}

	if in.OpeningTime != nil {
		v, err := timeOfDay(*in.OpeningTime, "opening_time", "Horário de abertura")
		if err != nil {
			return nil, err
		}
		fields["opening_time"] = v
	}
	if in.ClosingTime != nil {
		v, err := timeOfDay(*in.ClosingTime, "closing_time", "Horário de fechamento")
		if err != nil {
			return nil, err
		}
		fields["closing_time"] = v
	}
	if in.Open != nil {
		fields["open"] = *in.Open
	}

	row, err := uc.repo.UpdateOperatingHours(ctx, id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errHoursNotFound
		}
		return nil, usecase.Internal("barbershop.update_hours", err)
	}

	uc.DoneIfChanged(ctx, actor, fields, usecase.Mutation{
		Action:   "operating_hours.updated",
		Entity:   "operating_hours",
		EntityID: row.ID,
		Metadata: in,
		Views:    staleViews,
	})

	return row, nil
}

func timeOfDay(raw, field, label string) (string, error) {
	v, err := usecase.RequiredText(raw, field+"_required", label+" é obrigatório")
	if err != nil {
		return "", err
	}
	normalized, ok := validators.NormalizeTimeOfDay(v)
	if !ok {
		return "", httperr.Validation("invalid_"+field, label+" inválido, use HH:MM")
	}
	return normalized, nil
}
