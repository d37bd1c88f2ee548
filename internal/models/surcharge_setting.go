package models

import "github.com/google/uuid"

type SurchargeSetting struct {
	Base

	BarberID uuid.UUID `gorm:"type:uuid;not null;index" json:"barber_id"`
	Barber   *Barber   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Type     string `gorm:"size:20;not null" json:"type"`
	MaxValue int    `gorm:"not null" json:"max_value"`
	MinValue int    `gorm:"not null" json:"min_value"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}
