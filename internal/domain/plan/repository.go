package plan

import (
	"context"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

// Repository devolve planos sempre com Entitlements e o Service de cada
// um carregados.
type Repository interface {
	Create(ctx context.Context, p *models.MonthlyPlan) error
	List(ctx context.Context) ([]models.MonthlyPlan, error)
	ListByShop(ctx context.Context, shopID uint) ([]models.MonthlyPlan, error)
	Get(ctx context.Context, id uint) (*models.MonthlyPlan, error)
	Update(ctx context.Context, id uint, fields domain.Fields) (*models.MonthlyPlan, error)
	Delete(ctx context.Context, id uint) error

	// CreateEntitlement returns ErrServiceNotFound, ErrPlanNotFound or
	// ErrDuplicate.
	CreateEntitlement(ctx context.Context, e *models.PlanService) error
	UpdateEntitlement(ctx context.Context, id uint, fields domain.Fields) (*models.PlanService, error)
	DeleteEntitlement(ctx context.Context, id uint) error
}
