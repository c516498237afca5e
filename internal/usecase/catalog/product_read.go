package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

func (uc *Catalog) ListProducts(ctx context.Context, actor *auth.User) ([]models.Product, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, usecase.Internal("product.list", err)
	}
	return list, nil
}

func (uc *Catalog) ListProductsByShop(ctx context.Context, actor *auth.User, shopID uint) ([]models.Product, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := validateShopID(shopID); err != nil {
		return nil, err
	}
	list, err := uc.products.ListByShop(ctx, shopID)
	if err != nil {
		return nil, usecase.Internal("product.list_by_shop", err)
	}
	return list, nil
}

func (uc *Catalog) GetProduct(ctx context.Context, actor *auth.User, id uint) (*models.Product, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := usecase.RequireID(id, "invalid_product_id", "ID do produto inválido"); err != nil {
		return nil, err
	}

	p, err := uc.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errProductNotFound
		}
		return nil, usecase.Internal("product.get", err)
	}
	return p, nil
}
