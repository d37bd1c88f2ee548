package models

import "github.com/google/uuid"

type Service struct {
	Base

	ShopID uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id"`
	Shop   *Shop     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name            string  `gorm:"size:255;not null" json:"name"`
	Description     *string `gorm:"type:text" json:"description"`
	Price           int     `gorm:"not null" json:"price"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`
	IsActive        bool    `gorm:"not null" json:"is_active"`
}
