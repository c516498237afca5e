package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

func (uc *Catalog) ListServices(ctx context.Context, actor *auth.User) ([]models.Service, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	list, err := uc.services.List(ctx)
	if err != nil {
		return nil, usecase.Internal("service.list", err)
	}
	return list, nil
}

func (uc *Catalog) ListServicesByShop(ctx context.Context, actor *auth.User, shopID uint) ([]models.Service, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := validateShopID(shopID); err != nil {
		return nil, err
	}
	list, err := uc.services.ListByShop(ctx, shopID)
	if err != nil {
		return nil, usecase.Internal("service.list_by_shop", err)
	}
	return list, nil
}

func (uc *Catalog) GetService(ctx context.Context, actor *auth.User, id uint) (*models.Service, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := usecase.RequireID(id, "invalid_service_id", "ID do serviço inválido"); err != nil {
		return nil, err
	}

	s, err := uc.services.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errServiceNotFound
		}
		return nil, usecase.Internal("service.get", err)
	}
	return s, nil
}
