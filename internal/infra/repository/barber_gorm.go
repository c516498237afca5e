package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	barberdomain "github.com/BruksfildServices01/barber-admin/internal/domain/barber"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) Create(ctx context.Context, b *models.Barber) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BarberGormRepository) List(ctx context.Context) ([]models.Barber, error) {
	return listWhere[models.Barber](ctx, r.db, "")
}

func (r *BarberGormRepository) ListByShop(ctx context.Context, shopID uint) ([]models.Barber, error) {
	return listWhere[models.Barber](ctx, r.db, "barbershop_id = ?", shopID)
}

func (r *BarberGormRepository) Get(ctx context.Context, id uint) (*models.Barber, error) {
	return getByID[models.Barber](ctx, r.db, id)
}

func (r *BarberGormRepository) Update(ctx context.Context, id uint, fields domain.Fields) (*models.Barber, error) {
	return updateByID[models.Barber](ctx, r.db, id, fields)
}

func (r *BarberGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Barber](ctx, r.db, id)
}

var _ barberdomain.Repository = (*BarberGormRepository)(nil)
