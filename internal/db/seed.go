package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/validators"
)

type ProvisionInput struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string

	ShopName            string
	ServicePauseMinutes int
	OpeningTime         string
	ClosingTime         string
}

func DefaultProvisionInput() ProvisionInput {
	return ProvisionInput{
		AdminName:           "Admin",
		ShopName:            "BarberApp",
		ServicePauseMinutes: 30,
		OpeningTime:         "08:00",
		ClosingTime:         "18:00",
	}
}

// Provision é idempotente: cria apenas o que ainda não existe.
func Provision(ctx context.Context, db *gorm.DB, in ProvisionInput) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureAdminUser(tx, in); err != nil {
			return err
		}

		shopID, err := ensureBarbershop(tx, in)
		if err != nil {
			return err
		}

		return ensureOperatingHours(tx, shopID, in)
	})
}

func ensureAdminUser(tx *gorm.DB, in ProvisionInput) error {
	email := strings.TrimSpace(in.AdminEmail)
	if email == "" {
		return nil
	}
	if !validators.IsEmail(email) {
		return fmt.Errorf("invalid admin email %q", email)
	}
	if in.AdminPassword == "" {
		return errors.New("admin password is required to create the admin user")
	}

	var count int64
	if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return tx.Create(&models.User{
		Name:         in.AdminName,
		Email:        email,
		PasswordHash: string(hashed),
	}).Error
}

func ensureBarbershop(tx *gorm.DB, in ProvisionInput) (uint, error) {
	var shops []models.Barbershop
	if err := tx.Order("id ASC").Limit(2).Find(&shops).Error; err != nil {
		return 0, err
	}
	if len(shops) > 1 {
		return 0, errors.New("more than one barbershop provisioned")
	}
	if len(shops) == 1 {
		return shops[0].ID, nil
	}

	shop := models.Barbershop{
		Name:                in.ShopName,
		ServicePauseMinutes: in.ServicePauseMinutes,
	}
	if err := tx.Create(&shop).Error; err != nil {
		return 0, err
	}
	return shop.ID, nil
}

func ensureOperatingHours(tx *gorm.DB, shopID uint, in ProvisionInput) error {
	for _, day := range models.Weekdays {
		var count int64
		if err := tx.Model(&models.OperatingHours{}).
			Where("barbershop_id = ? AND weekday = ?", shopID, day).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := tx.Create(&models.OperatingHours{
			BarbershopID: shopID,
			Weekday:      day,
			OpeningTime:  in.OpeningTime,
			ClosingTime:  in.ClosingTime,
			Open:         true,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}
