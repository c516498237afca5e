package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barber-admin/internal/domain"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

type Counts struct {
	Barbers  int64 `json:"barbers"`
	Services int64 `json:"services"`
	Plans    int64 `json:"plans"`
}

// Repository trata a barbearia como registro único: nenhum método recebe
// o id dela.
type Repository interface {
	GetTheOnlyShop(ctx context.Context) (*models.Barbershop, error)
	UpdateTheOnlyShop(ctx context.Context, fields domain.Fields) (*models.Barbershop, error)
	CountChildren(ctx context.Context, shopID uint) (Counts, error)

	ListOperatingHours(ctx context.Context, shopID uint) ([]models.OperatingHours, error)
	UpdateOperatingHours(ctx context.Context, id uint, fields domain.Fields) (*models.OperatingHours, error)
}
