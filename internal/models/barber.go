package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Barber struct {
	Base

	ShopID uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id"`
	Shop   *Shop     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name         string                           `gorm:"size:255;not null" json:"name"`
	Email        *string                          `gorm:"size:255" json:"email"`
	Phone        *string                          `gorm:"size:20" json:"phone"`
	DaysOn       pq.StringArray                   `gorm:"type:text[];not null" json:"days_on"`
	WorkingHours datatypes.JSONSlice[WorkingHour] `gorm:"type:jsonb;not null" json:"working_hours"`
	IsActive     bool                             `gorm:"not null" json:"is_active"`
}

// WorkingHour is one entry of a barber's weekly schedule. Times are HH:MM
// in the shop's timezone.
type WorkingHour struct {
	Day        string `json:"day" binding:"required,dayname"`
	StartTime  string `json:"start_time" binding:"required,clock"`
	EndTime    string `json:"end_time" binding:"required,clock"`
	LunchStart string `json:"lunch_start,omitempty" binding:"omitempty,clock"`
	LunchEnd   string `json:"lunch_end,omitempty" binding:"omitempty,clock"`
}
