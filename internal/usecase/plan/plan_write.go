package plan

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/dto"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/money"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

type CreatePlanInput struct {
	Name        string     `json:"name"`
	Price       money.Text `json:"price"`
	Category    string     `json:"category"`
	Description *string    `json:"description"`
	Gift        *string    `json:"gift"`
}

func (uc *Plans) CreatePlan(ctx context.Context, actor *auth.User, in CreatePlanInput) (*dto.PlanView, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}

	name, err := usecase.RequiredText(in.Name, "name_required", "Nome do plano é obrigatório")
	if err != nil {
		return nil, err
	}
	price, err := usecase.PositivePrice(in.Price)
	if err != nil {
		return nil, err
	}
	category, err := parseCategory(strings.TrimSpace(in.Category))
	if err != nil {
		return nil, err
	}

	shop, err := uc.shops.GetTheOnlyShop(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errShopNotFound
		}
		return nil, usecase.Internal("plan.create", err)
	}

	p := &models.MonthlyPlan{
		BarbershopID: shop.ID,
		Name:         name,
		Price:        price,
		Category:     category,
		Description:  usecase.Nullable(in.Description),
		Gift:         usecase.Nullable(in.Gift),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, usecase.Internal("plan.create", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "plan.created",
		Entity:   "monthly_plan",
		EntityID: p.ID,
		Metadata: map[string]any{"name": p.Name, "price": p.Price.String(), "category": p.Category},
		Views:    staleViews,
	})

	view := dto.NewPlanView(*p)
	return &view, nil
}

type UpdatePlanInput struct {
	Name        *string     `json:"name"`
	Price       *money.Text `json:"price"`
	Category    *string     `json:"category"`
	Description *string     `json:"description"`
	Gift        *string     `json:"gift"`
}

func (uc *Plans) UpdatePlan(ctx context.Context, actor *auth.User, id uint, in UpdatePlanInput) (*dto.PlanView, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := validatePlanID(id); err != nil {
		return nil, err
	}

	fields := domain.Fields{}
	if in.Name != nil {
		name, err := usecase.RequiredText(*in.Name, "name_required", "Nome do plano é obrigatório")
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
	if in.Category != nil {
		category, err := parseCategory(strings.TrimSpace(*in.Category))
		if err != nil {
			return nil, err
		}
		fields["category"] = string(category)
	}
	if in.Description != nil {
		fields["description"] = usecase.NullableValue(*in.Description)
	}
	if in.Gift != nil {
		fields["gift"] = usecase.NullableValue(*in.Gift)
	}

	p, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errPlanNotFound
		}
		return nil, usecase.Internal("plan.update", err)
	}

	uc.DoneIfChanged(ctx, actor, fields, usecase.Mutation{
		Action:   "plan.updated",
		Entity:   "monthly_plan",
		EntityID: p.ID,
		Metadata: map[string]any{"name": p.Name, "price": p.Price.String(), "category": p.Category},
		Views:    staleViews,
	})

	view := dto.NewPlanView(*p)
	return &view, nil
}

// DeletePlan apaga o plano; os serviços vinculados caem pela FK.
func (uc *Plans) DeletePlan(ctx context.Context, actor *auth.User, id uint) error {
	if err := uc.Authorize(actor); err != nil {
		return err
	}
	if err := validatePlanID(id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errPlanNotFound
		}
		return usecase.Internal("plan.delete", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "plan.deleted",
		Entity:   "monthly_plan",
		EntityID: id,
		Views:    staleViews,
	})
	return nil
}
