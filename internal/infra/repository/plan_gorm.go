package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	plandomain "github.com/BruksfildServices01/barber-admin/internal/domain/plan"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

type PlanGormRepository struct {
	db *gorm.DB
}

func NewPlanGormRepository(db *gorm.DB) *PlanGormRepository {
	return &PlanGormRepository{db: db}
}

// withEntitlements carrega tudo em três consultas, independente do
// número de planos.
func withEntitlements(db *gorm.DB) *gorm.DB {
	return db.Preload("Entitlements", func(q *gorm.DB) *gorm.DB {
		return q.Order("plan_services.id ASC")
	}).Preload("Entitlements.Service")
}

func (r *PlanGormRepository) Create(ctx context.Context, p *models.MonthlyPlan) error {
	return translate(r.db.WithContext(ctx).Omit("Entitlements").Create(p).Error)
}

func (r *PlanGormRepository) List(ctx context.Context) ([]models.MonthlyPlan, error) {
	var plans []models.MonthlyPlan
	if err := withEntitlements(r.db.WithContext(ctx)).Order("id ASC").Find(&plans).Error; err != nil {
		return nil, translate(err)
	}
	return plans, nil
}

func (r *PlanGormRepository) ListByShop(ctx context.Context, shopID uint) ([]models.MonthlyPlan, error) {
	var plans []models.MonthlyPlan
	err := withEntitlements(r.db.WithContext(ctx)).
		Where("barbershop_id = ?", shopID).
		Order("id ASC").
		Find(&plans).Error
	if err != nil {
		return nil, translate(err)
	}
	return plans, nil
}

func (r *PlanGormRepository) Get(ctx context.Context, id uint) (*models.MonthlyPlan, error) {
	var p models.MonthlyPlan
	if err := withEntitlements(r.db.WithContext(ctx)).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PlanGormRepository) Update(ctx context.Context, id uint, fields domain.Fields) (*models.MonthlyPlan, error) {
	if _, err := updateByID[models.MonthlyPlan](ctx, r.db, id, fields); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete remove o plano; os entitlements caem junto pela FK.
func (r *PlanGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.MonthlyPlan](ctx, r.db, id)
}

func (r *PlanGormRepository) CreateEntitlement(ctx context.Context, e *models.PlanService) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Service{}).Where("id = ?", e.ServiceID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrServiceNotFound
		}

		if err := tx.Model(&models.MonthlyPlan{}).Where("id = ?", e.PlanID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrPlanNotFound
		}

		if err := tx.Model(&models.PlanService{}).
			Where("service_id = ? AND plan_id = ?", e.ServiceID, e.PlanID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrDuplicate
		}

		return tx.Omit("Service").Create(e).Error
	})

	if errors.Is(err, domain.ErrServiceNotFound) || errors.Is(err, domain.ErrPlanNotFound) {
		return err
	}
	return translate(err)
}

func (r *PlanGormRepository) UpdateEntitlement(ctx context.Context, id uint, fields domain.Fields) (*models.PlanService, error) {
	if _, err := updateByID[models.PlanService](ctx, r.db, id, fields); err != nil {
		return nil, err
	}

	var e models.PlanService
	if err := r.db.WithContext(ctx).Preload("Service").First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *PlanGormRepository) DeleteEntitlement(ctx context.Context, id uint) error {
	return deleteByID[models.PlanService](ctx, r.db, id)
}

var _ plandomain.Repository = (*PlanGormRepository)(nil)
