package models

import (
	"time"

	"github.com/BruksfildServices01/barber-admin/internal/money"
)

type MonthlyPlan struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	BarbershopID uint        `gorm:"not null;index" json:"barbershop_id"`
	Barbershop   *Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string       `gorm:"size:255;not null" json:"name"`
	Description *string      `gorm:"type:text" json:"description"`
	Gift        *string      `gorm:"size:255" json:"gift"`
	Price       money.Amount `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    PlanCategory `gorm:"type:varchar(10);not null;check:chk_monthly_plans_category,category IN ('basic','premium','plus')" json:"category"`

	Entitlements []PlanService `gorm:"foreignKey:PlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"entitlements,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlanService liga um serviço a um plano: quantas vezes por ciclo (ou
// ilimitado). No máximo uma linha por par (serviço, plano).
type PlanService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PlanID    uint     `gorm:"not null;uniqueIndex:idx_plan_services_service_plan,priority:2" json:"plan_id"`
	ServiceID uint     `gorm:"not null;uniqueIndex:idx_plan_services_service_plan,priority:1" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	AllowedCount int  `gorm:"not null" json:"allowed_count"`
	Unlimited    bool `gorm:"not null" json:"unlimited"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
