package plan

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/dto"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

func (uc *Plans) ListPlans(ctx context.Context, actor *auth.User) ([]dto.PlanView, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	plans, err := uc.repo.List(ctx)
	if err != nil {
		return nil, usecase.Internal("plan.list", err)
	}
	return dto.NewPlanViews(plans), nil
}

func (uc *Plans) ListPlansByShop(ctx context.Context, actor *auth.User, shopID uint) ([]dto.PlanView, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if shopID == 0 {
		return nil, httperr.Validation("invalid_barbershop_id", "ID da barbearia inválido")
	}
	plans, err := uc.repo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, usecase.Internal("plan.list_by_shop", err)
	}
	return dto.NewPlanViews(plans), nil
}

func (uc *Plans) GetPlan(ctx context.Context, actor *auth.User, id uint) (*dto.PlanView, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := validatePlanID(id); err != nil {
		return nil, err
	}

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errPlanNotFound
		}
		return nil, usecase.Internal("plan.get", err)
	}

	view := dto.NewPlanView(*p)
	return &view, nil
}
