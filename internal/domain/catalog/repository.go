package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	List(ctx context.Context) ([]models.Service, error)
	ListByShop(ctx context.Context, shopID uint) ([]models.Service, error)
	Get(ctx context.Context, id uint) (*models.Service, error)
	Update(ctx context.Context, id uint, fields domain.Fields) (*models.Service, error)
	Delete(ctx context.Context, id uint) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	ListByShop(ctx context.Context, shopID uint) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, id uint, fields domain.Fields) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}
