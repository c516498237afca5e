package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client,omitempty"`

	BarberID uint    `gorm:"not null;index" json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber,omitempty"`

	ServiceID uint     `gorm:"not null;index" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	PlanID *uint        `json:"plan_id"`
	Plan   *MonthlyPlan `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date time.Time `gorm:"type:date;not null" json:"date"`
	Time string    `gorm:"size:8;not null" json:"time"`

	Status      AppointmentStatus `gorm:"type:varchar(10);not null;default:'pending';check:chk_appointments_status,status IN ('pending','confirmed','cancelled','completed')" json:"status"`
	LoyaltyUsed bool              `gorm:"not null" json:"loyalty_used"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
