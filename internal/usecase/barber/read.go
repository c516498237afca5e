package barber

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

func (uc *Barbers) List(ctx context.Context, actor *auth.User) ([]models.Barber, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}

	barbers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, usecase.Internal("barber.list", err)
	}
	return barbers, nil
}

func (uc *Barbers) ListByShop(ctx context.Context, actor *auth.User, shopID uint) ([]models.Barber, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if shopID == 0 {
		return nil, httperr.Validation("invalid_barbershop_id", "ID da barbearia inválido")
	}

	barbers, err := uc.repo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, usecase.Internal("barber.list_by_shop", err)
	}
	return barbers, nil
}

func (uc *Barbers) Get(ctx context.Context, actor *auth.User, id uint) (*models.Barber, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	b, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBarberNotFound
		}
		return nil, usecase.Internal("barber.get", err)
	}
	return b, nil
}
