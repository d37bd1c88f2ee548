package routes

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type creatable interface {
	BeforeCreate(tx *gorm.DB) error
}

// memRepo keeps rows in insertion order and applies changes the way the
// gorm store does: only the given keys, updated_at refreshed when any.
// onDelete mirrors the store's cascade functions.
type memRepo[T any] struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]*T
	order    []uuid.UUID
	idOf     func(*T) uuid.UUID
	touch    func(*T, time.Time)
	onDelete func(id uuid.UUID)
}

func newMemRepo[T any](idOf func(*T) uuid.UUID, touch func(*T, time.Time)) *memRepo[T] {
	return &memRepo[T]{rows: map[uuid.UUID]*T{}, idOf: idOf, touch: touch}
}

func (m *memRepo[T]) Create(_ context.Context, row *T) error {
	if h, ok := any(row).(creatable); ok {
		if err := h.BeforeCreate(nil); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *row
	id := m.idOf(row)
	m.rows[id] = &cp
	m.order = append(m.order, id)
	return nil
}

func (m *memRepo[T]) List(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		if row, ok := m.rows[id]; ok {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *memRepo[T]) Get(_ context.Context, id uuid.UUID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *memRepo[T]) Update(_ context.Context, id uuid.UUID, changes booking.Changes) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	if len(changes) == 0 {
		cp := *row
		return &cp, nil
	}

	b, err := json.Marshal(changes)
	if err != nil {
		return nil, err
	}
	cp := *row
	if err := json.Unmarshal(b, &cp); err != nil {
		return nil, err
	}
	m.touch(&cp, time.Now().UTC())
	m.rows[id] = &cp

	out := cp
	return &out, nil
}

func (m *memRepo[T]) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	if _, ok := m.rows[id]; !ok {
		m.mu.Unlock()
		return booking.ErrNotFound
	}
	delete(m.rows, id)
	m.mu.Unlock()

	if m.onDelete != nil {
		m.onDelete(id)
	}
	return nil
}

func (m *memRepo[T]) deleteWhere(match func(*T) bool) {
	m.mu.Lock()
	var removed []uuid.UUID
	for id, row := range m.rows {
		if match(row) {
			delete(m.rows, id)
			removed = append(removed, id)
		}
	}
	m.mu.Unlock()

	if m.onDelete != nil {
		for _, id := range removed {
			m.onDelete(id)
		}
	}
}

type memSurcharges struct {
	rows *memRepo[models.SurchargeSetting]
}

func (s *memSurcharges) owned(ctx context.Context, barberID, id uuid.UUID) error {
	row, err := s.rows.Get(ctx, id)
	if err != nil {
		return err
	}
	if row.BarberID != barberID {
		return booking.ErrNotFound
	}
	return nil
}

func (s *memSurcharges) Create(ctx context.Context, barberID uuid.UUID, row *models.SurchargeSetting) error {
	row.BarberID = barberID
	return s.rows.Create(ctx, row)
}

func (s *memSurcharges) List(ctx context.Context, barberID uuid.UUID) ([]models.SurchargeSetting, error) {
	all, _ := s.rows.List(ctx)
	out := make([]models.SurchargeSetting, 0, len(all))
	for _, row := range all {
		if row.BarberID == barberID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *memSurcharges) Get(ctx context.Context, barberID, id uuid.UUID) (*models.SurchargeSetting, error) {
	if err := s.owned(ctx, barberID, id); err != nil {
		return nil, err
	}
	return s.rows.Get(ctx, id)
}

func (s *memSurcharges) Update(ctx context.Context, barberID, id uuid.UUID, changes booking.Changes) (*models.SurchargeSetting, error) {
	if err := s.owned(ctx, barberID, id); err != nil {
		return nil, err
	}
	return s.rows.Update(ctx, id, changes)
}

func (s *memSurcharges) Delete(ctx context.Context, barberID, id uuid.UUID) error {
	if err := s.owned(ctx, barberID, id); err != nil {
		return err
	}
	return s.rows.Delete(ctx, id)
}

type memAudit struct {
	mu   sync.Mutex
	logs []models.AuditLog
	last booking.AuditFilter
}

func (a *memAudit) Insert(_ context.Context, entry *models.AuditLog) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	a.logs = append(a.logs, *entry)
	return nil
}

func (a *memAudit) List(_ context.Context, f booking.AuditFilter) ([]models.AuditLog, int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = f
	out := make([]models.AuditLog, 0)
	for _, l := range a.logs {
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.EntityID != nil && l.EntityID != *f.EntityID {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func baseID(b *models.Base) uuid.UUID { return b.ID }

func baseTouch(b *models.Base, at time.Time) { b.UpdatedAt = at }

func memDependencies() Dependencies {
	shops := newMemRepo(
		func(r *models.Shop) uuid.UUID { return baseID(&r.Base) },
		func(r *models.Shop, at time.Time) { baseTouch(&r.Base, at) })
	barbers := newMemRepo(
		func(r *models.Barber) uuid.UUID { return baseID(&r.Base) },
		func(r *models.Barber, at time.Time) { baseTouch(&r.Base, at) })
	services := newMemRepo(
		func(r *models.Service) uuid.UUID { return baseID(&r.Base) },
		func(r *models.Service, at time.Time) { baseTouch(&r.Base, at) })
	customers := newMemRepo(
		func(r *models.Customer) uuid.UUID { return baseID(&r.Base) },
		func(r *models.Customer, at time.Time) { baseTouch(&r.Base, at) })
	appointments := newMemRepo(
		func(r *models.Appointment) uuid.UUID { return baseID(&r.Base) },
		func(r *models.Appointment, at time.Time) { baseTouch(&r.Base, at) })
	surcharges := newMemRepo(
		func(r *models.SurchargeSetting) uuid.UUID { return baseID(&r.Base) },
		func(r *models.SurchargeSetting, at time.Time) { baseTouch(&r.Base, at) })

	shops.onDelete = func(id uuid.UUID) {
		barbers.deleteWhere(func(b *models.Barber) bool { return b.ShopID == id })
		services.deleteWhere(func(s *models.Service) bool { return s.ShopID == id })
	}
	barbers.onDelete = func(id uuid.UUID) {
		surcharges.deleteWhere(func(s *models.SurchargeSetting) bool { return s.BarberID == id })
	}
	customers.onDelete = func(id uuid.UUID) {
		appointments.deleteWhere(func(a *models.Appointment) bool { return a.CustomerID == id })
	}

	return Dependencies{
		Shops:        shops,
		Barbers:      barbers,
		Services:     services,
		Customers:    customers,
		Appointments: appointments,
		Surcharges:   &memSurcharges{rows: surcharges},
		AuditLogs:    &memAudit{},
	}
}

func auditRow(action, entity string, id uuid.UUID) *models.AuditLog {
	return &models.AuditLog{Action: action, Entity: entity, EntityID: id, CreatedAt: time.Now().UTC()}
}
