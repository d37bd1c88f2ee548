package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditGormRepository) List(
	ctx context.Context,
	f booking.AuditFilter,
) ([]models.AuditLog, int64, error) {

	filtered := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.AuditLog{})

		if f.Action != "" {
			q = q.Where("action = ?", f.Action)
		}
		if f.Entity != "" {
			q = q.Where("entity = ?", f.Entity)
		}
		if f.EntityID != nil {
			q = q.Where("entity_id = ?", *f.EntityID)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]models.AuditLog, 0)
	if err := filtered().
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Compile-time check
var _ booking.AuditRepository = (*AuditGormRepository)(nil)
