package models

import "time"

// Barbershop é um registro único, provisionado pelo seed e nunca criado
// ou removido em runtime.
type Barbershop struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"size:255;not null" json:"name"`
	LoyaltyEnabled      bool      `gorm:"not null" json:"loyalty_enabled"`
	LoyaltyTarget       *int      `json:"loyalty_target"`
	ServicePauseMinutes int       `gorm:"not null;default:0" json:"service_pause_minutes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
