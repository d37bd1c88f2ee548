package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func NewShopRepository(db *gorm.DB) *GormRepository[models.Shop] {
	return NewGormRepository[models.Shop](db, "shop").withCascade(cascadeShop)
}

func NewBarberRepository(db *gorm.DB) *GormRepository[models.Barber] {
	return NewGormRepository[models.Barber](db, "barber").withCascade(cascadeBarber)
}

func NewServiceRepository(db *gorm.DB) *GormRepository[models.Service] {
	return NewGormRepository[models.Service](db, "service")
}

func NewCustomerRepository(db *gorm.DB) *GormRepository[models.Customer] {
	return NewGormRepository[models.Customer](db, "customer").withCascade(cascadeCustomer)
}

func NewAppointmentRepository(db *gorm.DB) *GormRepository[models.Appointment] {
	return NewGormRepository[models.Appointment](db, "appointment")
}

// --------------------------------------------------
// Cascades
// --------------------------------------------------

// cascadeShop removes the shop's barbers (with their surcharge settings)
// and services. Appointments that still reference one of them make the
// delete fail on the foreign key.
func cascadeShop(tx *gorm.DB, shopID uuid.UUID) error {
	barberIDs := tx.Model(&models.Barber{}).Select("id").Where("shop_id = ?", shopID)

	if err := tx.
		Where("barber_id IN (?)", barberIDs).
		Delete(&models.SurchargeSetting{}).Error; err != nil {
		return err
	}

	if err := tx.
		Where("shop_id = ?", shopID).
		Delete(&models.Barber{}).Error; err != nil {
		return err
	}

	return tx.
		Where("shop_id = ?", shopID).
		Delete(&models.Service{}).Error
}

func cascadeBarber(tx *gorm.DB, barberID uuid.UUID) error {
	return tx.
		Where("barber_id = ?", barberID).
		Delete(&models.SurchargeSetting{}).Error
}

func cascadeCustomer(tx *gorm.DB, customerID uuid.UUID) error {
	return tx.
		Where("customer_id = ?", customerID).
		Delete(&models.Appointment{}).Error
}

// Compile-time checks
var (
	_ booking.Repository[models.Shop]        = (*GormRepository[models.Shop])(nil)
	_ booking.Repository[models.Barber]      = (*GormRepository[models.Barber])(nil)
	_ booking.Repository[models.Service]     = (*GormRepository[models.Service])(nil)
	_ booking.Repository[models.Customer]    = (*GormRepository[models.Customer])(nil)
	_ booking.Repository[models.Appointment] = (*GormRepository[models.Appointment])(nil)
)
