package models

import "time"

type Barber struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	BarbershopID uint        `gorm:"not null;index" json:"barbershop_id"`
	Barbershop   *Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name      string  `gorm:"size:255;not null" json:"name"`
	WhatsApp  *string `gorm:"column:whatsapp;size:20" json:"whatsapp"`
	Instagram *string `gorm:"size:255" json:"instagram"`

	// Horário próprio, usado quando CustomHours está ligado.
	OpeningTime         *string `gorm:"size:8" json:"opening_time"`
	ClosingTime         *string `gorm:"size:8" json:"closing_time"`
	CustomHours         bool    `gorm:"not null" json:"custom_hours"`
	ServicePauseMinutes *int    `json:"service_pause_minutes"`

	ImageURL *string `gorm:"size:255" json:"image_url"`
	ImageID  *string `gorm:"size:255" json:"image_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
