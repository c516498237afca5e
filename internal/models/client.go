package models

import "time"

// Cliente simples, sem login. Só armazenamento: nenhuma regra de
// fidelidade é aplicada pela API.
type Client struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:255;not null" json:"name"`
	Phone *string `gorm:"size:20" json:"phone"`

	LoyaltyCount int `gorm:"not null;default:0" json:"loyalty_count"`

	PlanID *uint        `json:"plan_id"`
	Plan   *MonthlyPlan `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Subscription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"not null;index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	PlanID uint         `gorm:"not null;index" json:"plan_id"`
	Plan   *MonthlyPlan `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartedOn time.Time `gorm:"type:date;not null" json:"started_on"`
	ExpiresOn time.Time `gorm:"type:date;not null" json:"expires_on"`

	CreatedAt time.Time `json:"created_at"`
}
