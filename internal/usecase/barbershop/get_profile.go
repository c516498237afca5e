package barbershop

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	shopdomain "github.com/BruksfildServices01/barber-admin/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

type ProfileView struct {
	Shop           models.Barbershop       `json:"shop"`
	Counts         shopdomain.Counts       `json:"counts"`
	OperatingHours []models.OperatingHours `json:"operating_hours"`
}

func (uc *Profile) GetProfile(ctx context.Context, actor *auth.User) (*ProfileView, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetTheOnlyShop(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errShopNotFound
		}
		return nil, usecase.Internal("barbershop.get_profile", err)
	}

	counts, err := uc.repo.CountChildren(ctx, shop.ID)
	if err != nil {
		return nil, usecase.Internal("barbershop.get_profile", err)
	}

	hours, err := uc.repo.ListOperatingHours(ctx, shop.ID)
	if err != nil {
		return nil, usecase.Internal("barbershop.get_profile", err)
	}

	return &ProfileView{Shop: *shop, Counts: counts, OperatingHours: hours}, nil
}
