package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

type BarbershopGormRepository struct {
	db *gorm.DB
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db}
}

// GetTheOnlyShop falha se não houver exatamente uma barbearia.
func (r *BarbershopGormRepository) GetTheOnlyShop(ctx context.Context) (*models.Barbershop, error) {
	var shops []models.Barbershop
	if err := r.db.WithContext(ctx).Order("id ASC").Limit(2).Find(&shops).Error; err != nil {
		return nil, translate(err)
	}

	switch len(shops) {
	case 0:
		return nil, domain.ErrNotFound
	case 1:
		return &shops[0], nil
	default:
		return nil, fmt.Errorf("expected a single barbershop, found %d or more", len(shops))
	}
}

func (r *BarbershopGormRepository) UpdateTheOnlyShop(ctx context.Context, fields domain.Fields) (*models.Barbershop, error) {
	shop, err := r.GetTheOnlyShop(ctx)
	if err != nil {
		return nil, err
	}
	return updateByID[models.Barbershop](ctx, r.db, shop.ID, fields)
}

func (r *BarbershopGormRepository) CountChildren(ctx context.Context, shopID uint) (barbershop.Counts, error) {
	var c barbershop.Counts
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Barber{}).Where("barbershop_id = ?", shopID).Count(&c.Barbers).Error; err != nil {
		return c, err
	}
	if err := db.Model(&models.Service{}).Where("barbershop_id = ?", shopID).Count(&c.Services).Error; err != nil {
		return c, err
	}
	if err := db.Model(&models.MonthlyPlan{}).Where("barbershop_id = ?", shopID).Count(&c.Plans).Error; err != nil {
		return c, err
	}
	return c, nil
}

// ListOperatingHours ordena de domingo a sábado.
func (r *BarbershopGormRepository) ListOperatingHours(ctx context.Context, shopID uint) ([]models.OperatingHours, error) {
	var rows []models.OperatingHours
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", shopID).
		Order(`CASE weekday
			WHEN 'sunday' THEN 0 WHEN 'monday' THEN 1 WHEN 'tuesday' THEN 2
			WHEN 'wednesday' THEN 3 WHEN 'thursday' THEN 4 WHEN 'friday' THEN 5
			ELSE 6 END`).
		Find(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *BarbershopGormRepository) UpdateOperatingHours(ctx context.Context, id uint, fields domain.Fields) (*models.OperatingHours, error) {
	return updateByID[models.OperatingHours](ctx, r.db, id, fields)
}

var _ barbershop.Repository = (*BarbershopGormRepository)(nil)
