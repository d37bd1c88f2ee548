package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	Base

	BarberID uuid.UUID `gorm:"type:uuid;not null;index" json:"barber_id"`
	Barber   *Barber   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   *Service  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	AppointmentDate time.Time `gorm:"type:timestamptz;not null" json:"appointment_date"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	Price      int `gorm:"not null" json:"price"`
	Discount   int `gorm:"not null" json:"discount"`
	BookingFee int `gorm:"not null" json:"booking_fee"`
	Surcharge  int `gorm:"not null" json:"surcharge"`

	Status string  `gorm:"size:20;not null" json:"status"`
	Notes  *string `gorm:"type:text" json:"notes"`

	// TotalPrice is part of the response contract but nothing computes it
	// yet; it is always null.
	TotalPrice *int `gorm:"-" json:"total_price"`
}
