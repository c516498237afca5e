package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/invalidate"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/money"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

type CreateServiceInput struct {
	Name  string     `json:"name"`
	Price money.Text `json:"price"`
}

// CreateService grava o serviço na barbearia única.
func (uc *Catalog) CreateService(ctx context.Context, actor *auth.User, in CreateServiceInput) (*models.Service, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}

	name, err := usecase.RequiredText(in.Name, "name_required", "Nome do serviço é obrigatório")
	if err != nil {
		return nil, err
	}
	price, err := usecase.PositivePrice(in.Price)
	if err != nil {
		return nil, err
	}

	shop, err := uc.shops.GetTheOnlyShop(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errShopNotFound
		}
		return nil, usecase.Internal("service.create", err)
	}

	s := &models.Service{BarbershopID: shop.ID, Name: name, Price: price}
	if err := uc.services.Create(ctx, s); err != nil {
		return nil, usecase.Internal("service.create", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "service.created",
		Entity:   "service",
		EntityID: s.ID,
		Metadata: map[string]any{"name": s.Name, "price": s.Price.String()},
		Views:    serviceViews,
	})
	return s, nil
}

type UpdateServiceInput struct {
	Name  *string     `json:"name"`
	Price *money.Text `json:"price"`
}

func (uc *Catalog) UpdateService(ctx context.Context, actor *auth.User, id uint, in UpdateServiceInput) (*models.Service, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := usecase.RequireID(id, "invalid_service_id", "ID do serviço inválido"); err != nil {
		return nil, err
	}

	fields := domain.Fields{}
	if in.Name != nil {
		name, err := usecase.RequiredText(*in.Name, "name_required", "Nome do serviço é obrigatório")
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if in.Price != nil {
		price, err := usecase.PositivePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		fields["price"] = price
	}

	s, err := uc.services.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errServiceNotFound
		}
		return nil, usecase.Internal("service.update", err)
	}

	uc.DoneIfChanged(ctx, actor, fields, usecase.Mutation{
		Action:   "service.updated",
		Entity:   "service",
		EntityID: s.ID,
		Metadata: map[string]any{"name": s.Name, "price": s.Price.String()},
		Views:    serviceViews,
	})
	return s, nil
}

// DeleteService não checa agendamentos; entitlements caem pela FK.
func (uc *Catalog) DeleteService(ctx context.Context, actor *auth.User, id uint) error {
	if err := uc.Authorize(actor); err != nil {
		return err
	}
	if err := usecase.RequireID(id, "invalid_service_id", "ID do serviço inválido"); err != nil {
		return err
	}

	if err := uc.services.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errServiceNotFound
		}
		return usecase.Internal("service.delete", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "service.deleted",
		Entity:   "service",
		EntityID: id,
		Views:    []invalidate.View{invalidate.ViewServices, invalidate.ViewAppointments, invalidate.ViewPlans},
	})
	return nil
}
