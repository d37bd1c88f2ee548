package booking

import (
	"context"
	"errors"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var ErrNotFound = errors.New("record not found")

// Changes maps column names to new values for a partial update. A missing
// key leaves the column untouched; a nil value stores NULL.
type Changes map[string]any

// Keys returns the changed column names in sorted order.
func (c Changes) Keys() []string {
	return slices.Sorted(maps.Keys(c))
}

// Repository is the single-table contract every top-level resource is
// served through.
type Repository[T any] interface {
	Create(ctx context.Context, row *T) error
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Update(ctx context.Context, id uuid.UUID, changes Changes) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SurchargeRepository scopes every operation to the owning barber. A
// setting that exists under another barber is reported as ErrNotFound.
type SurchargeRepository interface {
	Create(ctx context.Context, barberID uuid.UUID, s *models.SurchargeSetting) error
	List(ctx context.Context, barberID uuid.UUID) ([]models.SurchargeSetting, error)
	Get(ctx context.Context, barberID, id uuid.UUID) (*models.SurchargeSetting, error)
	Update(ctx context.Context, barberID, id uuid.UUID, changes Changes) (*models.SurchargeSetting, error)
	Delete(ctx context.Context, barberID, id uuid.UUID) error
}

type AuditFilter struct {
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Limit    int
	Offset   int
}

type AuditRepository interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, f AuditFilter) ([]models.AuditLog, int64, error)
}
