package models

import "time"

type OperatingHours struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	BarbershopID uint        `gorm:"not null;uniqueIndex:idx_operating_hours_shop_day,priority:1" json:"barbershop_id"`
	Barbershop   *Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday     Weekday `gorm:"type:varchar(10);not null;uniqueIndex:idx_operating_hours_shop_day,priority:2;check:chk_operating_hours_weekday,weekday IN ('sunday','monday','tuesday','wednesday','thursday','friday','saturday')" json:"weekday"`
	OpeningTime string  `gorm:"size:8;not null" json:"opening_time"`
	ClosingTime string  `gorm:"size:8;not null" json:"closing_time"`
	Open        bool    `gorm:"not null" json:"open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OperatingHours) TableName() string {
	return "operating_hours"
}
