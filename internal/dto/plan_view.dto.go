package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-admin/internal/models"
	"github.com/BruksfildServices01/barber-admin/internal/money"
)

type ServiceSummary struct {
	ID    uint         `json:"id"`
	Name  string       `json:"name"`
	Price money.Amount `json:"price"`
}

type EntitlementView struct {
	ID           uint           `json:"id"`
	PlanID       uint           `json:"plan_id"`
	ServiceID    uint           `json:"service_id"`
	AllowedCount int            `json:"allowed_count"`
	Unlimited    bool           `json:"unlimited"`
	Service      ServiceSummary `json:"service"`
}

type PlanView struct {
	ID           uint                `json:"id"`
	BarbershopID uint                `json:"barbershop_id"`
	Name         string              `json:"name"`
	Description  *string             `json:"description"`
	Gift         *string             `json:"gift"`
	Price        money.Amount        `json:"price"`
	Category     models.PlanCategory `json:"category"`
	Entitlements []EntitlementView   `json:"entitlements"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func NewEntitlementView(e models.PlanService) EntitlementView {
	v := EntitlementView{
		ID:           e.ID,
		PlanID:       e.PlanID,
		ServiceID:    e.ServiceID,
		AllowedCount: e.AllowedCount,
		Unlimited:    e.Unlimited,
		Service:      ServiceSummary{ID: e.ServiceID},
	}
	if e.Service != nil {
		v.Service.Name = e.Service.Name
		v.Service.Price = e.Service.Price
	}
	return v
}

// NewPlanView espera Entitlements e Service já carregados.
func NewPlanView(p models.MonthlyPlan) PlanView {
	ents := make([]EntitlementView, 0, len(p.Entitlements))
	for _, e := range p.Entitlements {
		ents = append(ents, NewEntitlementView(e))
	}

	return PlanView{
		ID:           p.ID,
		BarbershopID: p.BarbershopID,
		Name:         p.Name,
		Description:  p.Description,
		Gift:         p.Gift,
		Price:        p.Price,
		Category:     p.Category,
		Entitlements: ents,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func NewPlanViews(plans []models.MonthlyPlan) []PlanView {
	out := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		out = append(out, NewPlanView(p))
	}
	return out
}
