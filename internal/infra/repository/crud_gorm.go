package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

type scope = func(*gorm.DB) *gorm.DB

// cascadeFunc removes the dependents of the row being deleted. It runs in
// the same transaction as the delete itself.
type cascadeFunc func(tx *gorm.DB, id uuid.UUID) error

// GormRepository implements booking.Repository for one gorm model.
type GormRepository[T any] struct {
	db      *gorm.DB
	name    string
	cascade cascadeFunc
}

func NewGormRepository[T any](db *gorm.DB, name string) *GormRepository[T] {
	return &GormRepository[T]{db: db, name: name}
}

func (r *GormRepository[T]) withCascade(fn cascadeFunc) *GormRepository[T] {
	r.cascade = fn
	return r
}

// --------------------------------------------------
// booking.Repository
// --------------------------------------------------

func (r *GormRepository[T]) Create(ctx context.Context, row *T) error {
	defer metrics.TrackDBOperation(r.name + "_create")(time.Now())
	return r.create(r.db.WithContext(ctx), row)
}

func (r *GormRepository[T]) List(ctx context.Context) ([]T, error) {
	defer metrics.TrackDBOperation(r.name + "_list")(time.Now())
	return r.list(r.db.WithContext(ctx))
}

func (r *GormRepository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	defer metrics.TrackDBOperation(r.name + "_get")(time.Now())
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormRepository[T]) Update(
	ctx context.Context,
	id uuid.UUID,
	changes booking.Changes,
) (*T, error) {
	defer metrics.TrackDBOperation(r.name + "_update")(time.Now())
	return r.update(r.db.WithContext(ctx), id, changes)
}

func (r *GormRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	defer metrics.TrackDBOperation(r.name + "_delete")(time.Now())
	return r.delete(r.db.WithContext(ctx), id)
}

// --------------------------------------------------
// scoped building blocks
// --------------------------------------------------

func (r *GormRepository[T]) create(db *gorm.DB, row *T) error {
	return db.Create(row).Error
}

func (r *GormRepository[T]) list(db *gorm.DB, scopes ...scope) ([]T, error) {
	rows := make([]T, 0)
	if err := db.
		Scopes(scopes...).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepository[T]) get(db *gorm.DB, id uuid.UUID, scopes ...scope) (*T, error) {
	var row T
	if err := db.
		Scopes(scopes...).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *GormRepository[T]) update(
	db *gorm.DB,
	id uuid.UUID,
	changes booking.Changes,
	scopes ...scope,
) (*T, error) {

	var out *T
	err := db.Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(scopes...).
			Where("id = ?", id).
			First(&row).Error; err != nil {
			return translate(err)
		}

		if len(changes) == 0 {
			out = &row
			return nil
		}

		if err := tx.Model(&row).Updates(map[string]any(changes)).Error; err != nil {
			return err
		}

		var fresh T
		if err := tx.Where("id = ?", id).First(&fresh).Error; err != nil {
			return translate(err)
		}
		out = &fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepository[T]) delete(db *gorm.DB, id uuid.UUID, scopes ...scope) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(scopes...).
			Where("id = ?", id).
			First(&row).Error; err != nil {
			return translate(err)
		}

		if r.cascade != nil {
			if err := r.cascade(tx, id); err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return booking.ErrNotFound
		}
		return nil
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking.ErrNotFound
	}
	return err
}
