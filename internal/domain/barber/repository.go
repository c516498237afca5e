package barber

import (
	"context"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

type Repository interface {
	Create(ctx context.Context, b *models.Barber) error
	List(ctx context.Context) ([]models.Barber, error)
	ListByShop(ctx context.Context, shopID uint) ([]models.Barber, error)
	Get(ctx context.Context, id uint) (*models.Barber, error)
	Update(ctx context.Context, id uint, fields domain.Fields) (*models.Barber, error)
	Delete(ctx context.Context, id uint) error
}
