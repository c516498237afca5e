package plan

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/dto"
	"github.com/BruksfildServices01/barber-admin/internal/httperr"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

type CreateEntitlementInput struct {
	ServiceID    uint `json:"service_id"`
	PlanID       uint `json:"plan_id"`
	AllowedCount int  `json:"allowed_count"`
	Unlimited    bool `json:"unlimited"`
}

func (uc *Plans) CreateEntitlement(ctx context.Context, actor *auth.User, in CreateEntitlementInput) (*dto.EntitlementView, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if in.ServiceID == 0 {
		return nil, httperr.Validation("invalid_service_id", "Serviço é obrigatório")
	}
	if err := validatePlanID(in.PlanID); err != nil {
		return nil, err
	}
	if err := validateAllowedCount(in.AllowedCount); err != nil {
		return nil, err
	}

	e := &models.PlanService{
		ServiceID:    in.ServiceID,
		PlanID:       in.PlanID,
		AllowedCount: in.AllowedCount,
		Unlimited:    in.Unlimited,
	}

	if err := uc.repo.CreateEntitlement(ctx, e); err != nil {
		switch {
		case errors.Is(err, domain.ErrServiceNotFound):
			return nil, errServiceNotFound
		case errors.Is(err, domain.ErrPlanNotFound):
			return nil, errPlanNotFound
		case errors.Is(err, domain.ErrDuplicate):
			return nil, errDuplicate
		}
		return nil, usecase.Internal("plan.create_entitlement", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "plan_service.created",
		Entity:   "plan_service",
		EntityID: e.ID,
		Metadata: in,
		Views:    staleViews,
	})

	view := dto.NewEntitlementView(*e)
	return &view, nil
}

// UpdateEntitlementCount altera só a quantidade permitida por ciclo.
func (uc *Plans) UpdateEntitlementCount(ctx context.Context, actor *auth.User, id uint, allowedCount int) (*dto.EntitlementView, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := usecase.RequireID(id, "invalid_plan_service_id", "ID do serviço do plano inválido"); err != nil {
		return nil, err
	}
	if err := validateAllowedCount(allowedCount); err != nil {
		return nil, err
	}

	e, err := uc.repo.UpdateEntitlement(ctx, id, domain.Fields{"allowed_count": allowedCount})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errEntitlementNotFound
		}
		return nil, usecase.Internal("plan.update_entitlement", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "plan_service.updated",
		Entity:   "plan_service",
		EntityID: e.ID,
		Metadata: map[string]any{"allowed_count": allowedCount},
		Views:    staleViews,
	})

	view := dto.NewEntitlementView(*e)
	return &view, nil
}

func (uc *Plans) DeleteEntitlement(ctx context.Context, actor *auth.User, id uint) error {
	if err := uc.Authorize(actor); err != nil {
		return err
	}
	if err := usecase.RequireID(id, "invalid_plan_service_id", "ID do serviço do plano inválido"); err != nil {
		return err
	}

	if err := uc.repo.DeleteEntitlement(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errEntitlementNotFound
		}
		return usecase.Internal("plan.delete_entitlement", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "plan_service.deleted",
		Entity:   "plan_service",
		EntityID: id,
		Views:    staleViews,
	})
	return nil
}
