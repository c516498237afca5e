package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/auth"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

var _ auth.UserStore = (*UserGormRepository)(nil)
