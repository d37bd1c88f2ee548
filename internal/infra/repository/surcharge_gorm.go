package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type SurchargeGormRepository struct {
	db   *gorm.DB
	rows *GormRepository[models.SurchargeSetting]
}

func NewSurchargeRepository(db *gorm.DB) *SurchargeGormRepository {
	return &SurchargeGormRepository{
		db:   db,
		rows: NewGormRepository[models.SurchargeSetting](db, "surcharge"),
	}
}

func ownedBy(barberID uuid.UUID) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("barber_id = ?", barberID)
	}
}

func (r *SurchargeGormRepository) Create(
	ctx context.Context,
	barberID uuid.UUID,
	s *models.SurchargeSetting,
) error {
	defer metrics.TrackDBOperation("surcharge_create")(time.Now())

	s.BarberID = barberID
	return r.rows.create(r.db.WithContext(ctx), s)
}

func (r *SurchargeGormRepository) List(
	ctx context.Context,
	barberID uuid.UUID,
) ([]models.SurchargeSetting, error) {
	defer metrics.TrackDBOperation("surcharge_list")(time.Now())
	return r.rows.list(r.db.WithContext(ctx), ownedBy(barberID))
}

func (r *SurchargeGormRepository) Get(
	ctx context.Context,
	barberID uuid.UUID,
	id uuid.UUID,
) (*models.SurchargeSetting, error) {
	defer metrics.TrackDBOperation("surcharge_get")(time.Now())
	return r.rows.get(r.db.WithContext(ctx), id, ownedBy(barberID))
}

func (r *SurchargeGormRepository) Update(
	ctx context.Context,
	barberID uuid.UUID,
	id uuid.UUID,
	changes booking.Changes,
) (*models.SurchargeSetting, error) {
	defer metrics.TrackDBOperation("surcharge_update")(time.Now())
	return r.rows.update(r.db.WithContext(ctx), id, changes, ownedBy(barberID))
}

func (r *SurchargeGormRepository) Delete(
	ctx context.Context,
	barberID uuid.UUID,
	id uuid.UUID,
) error {
	defer metrics.TrackDBOperation("surcharge_delete")(time.Now())
	return r.rows.delete(r.db.WithContext(ctx), id, ownedBy(barberID))
}

// Compile-time check
var _ booking.SurchargeRepository = (*SurchargeGormRepository)(nil)
