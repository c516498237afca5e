package models

import (
	"time"

	"github.com/BruksfildServices01/barber-admin/internal/money"
)

type Product struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	BarbershopID uint        `gorm:"not null;index" json:"barbershop_id"`
	Barbershop   *Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string       `gorm:"size:255;not null" json:"name"`
	Price       money.Amount `gorm:"type:decimal(10,2);not null" json:"price"`
	Description *string      `gorm:"type:text" json:"description"`

	ImageURL *string `gorm:"size:255" json:"image_url"`
	ImageID  *string `gorm:"size:255" json:"image_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
