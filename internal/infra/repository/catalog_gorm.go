package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

// --------------------------------------------------
// Services
// --------------------------------------------------

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]models.Service, error) {
	return listWhere[models.Service](ctx, r.db, "")
}

func (r *ServiceGormRepository) ListByShop(ctx context.Context, shopID uint) ([]models.Service, error) {
	return listWhere[models.Service](ctx, r.db, "barbershop_id = ?", shopID)
}

func (r *ServiceGormRepository) Get(ctx context.Context, id uint) (*models.Service, error) {
	return getByID[models.Service](ctx, r.db, id)
}

func (r *ServiceGormRepository) Update(ctx context.Context, id uint, fields domain.Fields) (*models.Service, error) {
	return updateByID[models.Service](ctx, r.db, id, fields)
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Service](ctx, r.db, id)
}

// --------------------------------------------------
// Products
// --------------------------------------------------

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Create(ctx context.Context, p *models.Product) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProductGormRepository) List(ctx context.Context) ([]models.Product, error) {
	return listWhere[models.Product](ctx, r.db, "")
}

func (r *ProductGormRepository) ListByShop(ctx context.Context, shopID uint) ([]models.Product, error) {
	return listWhere[models.Product](ctx, r.db, "barbershop_id = ?", shopID)
}

func (r *ProductGormRepository) Get(ctx context.Context, id uint) (*models.Product, error) {
	return getByID[models.Product](ctx, r.db, id)
}

func (r *ProductGormRepository) Update(ctx context.Context, id uint, fields domain.Fields) (*models.Product, error) {
	return updateByID[models.Product](ctx, r.db, id, fields)
}

func (r *ProductGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Product](ctx, r.db, id)
}

var (
	_ catalog.ServiceRepository = (*ServiceGormRepository)(nil)
	_ catalog.ProductRepository = (*ProductGormRepository)(nil)
)
