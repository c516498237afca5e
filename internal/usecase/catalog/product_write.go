package catalog

import (
	"context"
	"errors"
	"io"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/money"
	"github.com/BruksfildServices01/barber-admin/internal/storage"
	"github.com/BruksfildServices01/barber-admin/internal/usecase"
)

type CreateProductInput struct {
	Name         string
	Price        money.Text
	BarbershopID uint
	Description  *string
	Photo        io.Reader
}

func (uc *Catalog) CreateProduct(ctx context.Context, actor *auth.User, in CreateProductInput) (*models.Product, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}

	name, err := usecase.RequiredText(in.Name, "name_required", "Nome do produto é obrigatório")
	if err != nil {
		return nil, err
	}
	price, err := usecase.PositivePrice(in.Price)
	if err != nil {
		return nil, err
	}
	if err := validateShopID(in.BarbershopID); err != nil {
		return nil, err
	}

	p := &models.Product{
		BarbershopID: in.BarbershopID,
		Name:         name,
		Price:        price,
		Description:  usecase.Nullable(in.Description),
	}

	if in.Photo != nil {
		img, err := uc.uploader.Upload(ctx, storage.FolderProducts, in.Photo)
		if err != nil {
			return nil, usecase.UploadFailed("product.create", err)
		}
		p.ImageURL = &img.URL
		p.ImageID = &img.ID
	}

	if err := uc.products.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, errShopNotFound
		}
		return nil, usecase.Internal("product.create", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "product.created",
		Entity:   "product",
		EntityID: p.ID,
		Metadata: map[string]any{"name": p.Name, "price": p.Price.String()},
		Views:    productViews,
	})
	return p, nil
}

type UpdateProductInput struct {
	Name        *string
	Price       *money.Text
	Description *string
	Photo       io.Reader
}

func (uc *Catalog) UpdateProduct(ctx context.Context, actor *auth.User, id uint, in UpdateProductInput) (*models.Product, error) {
	if err := uc.Authorize(actor); err != nil {
		return nil, err
	}
	if err := usecase.RequireID(id, "invalid_product_id", "ID do produto inválido"); err != nil {
		return nil, err
	}

	fields := domain.Fields{}
	if in.Name != nil {
		name, err := usecase.RequiredText(*in.Name, "name_required", "Nome do produto é obrigatório")
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
	if in.Description != nil {
		fields["description"] = usecase.NullableValue(*in.Description)
	}

	if in.Photo != nil {
		if _, err := uc.GetProduct(ctx, actor, id); err != nil {
			return nil, err
		}
		img, err := uc.uploader.Upload(ctx, storage.FolderProducts, in.Photo)
		if err != nil {
			return nil, usecase.UploadFailed("product.update", err)
		}
		fields["image_url"] = img.URL
		fields["image_id"] = img.ID
	}

	p, err := uc.products.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errProductNotFound
		}
		return nil, usecase.Internal("product.update", err)
	}

	uc.DoneIfChanged(ctx, actor, fields, usecase.Mutation{
		Action:   "product.updated",
		Entity:   "product",
		EntityID: p.ID,
		Metadata: map[string]any{"name": p.Name, "price": p.Price.String()},
		Views:    productViews,
	})
	return p, nil
}

func (uc *Catalog) DeleteProduct(ctx context.Context, actor *auth.User, id uint) error {
	if err := uc.Authorize(actor); err != nil {
		return err
	}
	if err := usecase.RequireID(id, "invalid_product_id", "ID do produto inválido"); err != nil {
		return err
	}

	if err := uc.products.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errProductNotFound
		}
		return usecase.Internal("product.delete", err)
	}

	uc.Done(ctx, actor, usecase.Mutation{
		Action:   "product.deleted",
		Entity:   "product",
		EntityID: id,
		Views:    productViews,
	})
	return nil
}
