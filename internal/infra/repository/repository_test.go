package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// testDB connects to TEST_DATABASE_URL and migrates the schema. Tests that
// need it are skipped when the variable is unset.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type store struct {
	shops        *GormRepository[models.Shop]
	barbers      *GormRepository[models.Barber]
	services     *GormRepository[models.Service]
	customers    *GormRepository[models.Customer]
	appointments *GormRepository[models.Appointment]
	surcharges   *SurchargeGormRepository
}

func newStore(db *gorm.DB) store {
	return store{
		shops:        NewShopRepository(db),
		barbers:      NewBarberRepository(db),
		services:     NewServiceRepository(db),
		customers:    NewCustomerRepository(db),
		appointments: NewAppointmentRepository(db),
		surcharges:   NewSurchargeRepository(db),
	}
}

type graph struct {
	shop        models.Shop
	barber      models.Barber
	service     models.Service
	customer    models.Customer
	surcharge   models.SurchargeSetting
	appointment models.Appointment
}

func seedGraph(t *testing.T, s store, withAppointment bool) graph {
	t.Helper()
	ctx := context.Background()

	var g graph
	g.shop = models.Shop{Name: "Main St", Timezone: "UTC"}
	mustNil(t, s.shops.Create(ctx, &g.shop))

	g.barber = models.Barber{
		ShopID: g.shop.ID,
		Name:   "Alex",
		DaysOn: []string{"mon", "tue"},
		WorkingHours: datatypes.JSONSlice[models.WorkingHour]{
			{Day: "mon", StartTime: "09:00", EndTime: "18:00", LunchStart: "12:00", LunchEnd: "13:00"},
		},
		IsActive: true,
	}
	mustNil(t, s.barbers.Create(ctx, &g.barber))

	g.service = models.Service{ShopID: g.shop.ID, Name: "Haircut", Price: 3500, DurationMinutes: 30, IsActive: true}
	mustNil(t, s.services.Create(ctx, &g.service))

	g.customer = models.Customer{Name: "Sam", Phone: "555-0100"}
	mustNil(t, s.customers.Create(ctx, &g.customer))

	g.surcharge = models.SurchargeSetting{Type: "holiday", MaxValue: 50, IsActive: true}
	mustNil(t, s.surcharges.Create(ctx, g.barber.ID, &g.surcharge))

	if withAppointment {
		g.appointment = models.Appointment{
			BarberID:        g.barber.ID,
			CustomerID:      g.customer.ID,
			ServiceID:       g.service.ID,
			AppointmentDate: time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC),
			DurationMinutes: 30,
			Price:           3500,
			Status:          string(booking.StatusScheduled),
		}
		mustNil(t, s.appointments.Create(ctx, &g.appointment))
	}
	return g
}

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func mustNotFound(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, booking.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShopDeleteCascadesToBarbersServicesAndSurcharges(t *testing.T) {
	s := newStore(testDB(t))
	ctx := context.Background()
	g := seedGraph(t, s, false)

	mustNil(t, s.shops.Delete(ctx, g.shop.ID))

	_, err := s.shops.Get(ctx, g.shop.ID)
	mustNotFound(t, err)
	_, err = s.barbers.Get(ctx, g.barber.ID)
	mustNotFound(t, err)
	_, err = s.services.Get(ctx, g.service.ID)
	mustNotFound(t, err)
	_, err = s.surcharges.Get(ctx, g.barber.ID, g.surcharge.ID)
	mustNotFound(t, err)

	_, err = s.customers.Get(ctx, g.customer.ID)
	mustNil(t, err)
}

func TestBarberDeleteCascadesToSurcharges(t *testing.T) {
	s := newStore(testDB(t))
	ctx := context.Background()
	g := seedGraph(t, s, false)

	mustNil(t, s.barbers.Delete(ctx, g.barber.ID))

	rows, err := s.surcharges.List(ctx, g.barber.ID)
	mustNil(t, err)
	if len(rows) != 0 {
		t.Fatalf("expected surcharges removed, got %d", len(rows))
	}
}

func TestCustomerDeleteCascadesToAppointments(t *testing.T) {
	s := newStore(testDB(t))
	ctx := context.Background()
	g := seedGraph(t, s, true)

	mustNil(t, s.customers.Delete(ctx, g.customer.ID))

	_, err := s.appointments.Get(ctx, g.appointment.ID)
	mustNotFound(t, err)
	_, err = s.barbers.Get(ctx, g.barber.ID)
	mustNil(t, err)
}

func TestBarberDeleteWithAppointmentRollsBack(t *testing.T) {
	s := newStore(testDB(t))
	ctx := context.Background()
	g := seedGraph(t, s, true)

	err := s.barbers.Delete(ctx, g.barber.ID)
	if !httperr.IsForeignKeyViolation(err) {
		t.Fatalf("expected foreign key violation, got %v", err)
	}

	_, err = s.barbers.Get(ctx, g.barber.ID)
	mustNil(t, err)
	_, err = s.surcharges.Get(ctx, g.barber.ID, g.surcharge.ID)
	mustNil(t, err)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	s := newStore(testDB(t))
	mustNotFound(t, s.shops.Delete(context.Background(), uuid.New()))
}

func TestUpdateAppliesOnlyGivenColumns(t *testing.T) {
	s := newStore(testDB(t))
	ctx := context.Background()
	g := seedGraph(t, s, false)

	stored, err := s.services.Get(ctx, g.service.ID)
	mustNil(t, err)

	same, err := s.services.Update(ctx, g.service.ID, booking.Changes{})
	mustNil(t, err)
	if !same.UpdatedAt.Equal(stored.UpdatedAt) || same.Price != stored.Price {
		t.Fatalf("empty update changed the row: %+v", same)
	}

	desc := "wash included"
	_, err = s.services.Update(ctx, g.service.ID, booking.Changes{"description": desc})
	mustNil(t, err)

	updated, err := s.services.Update(ctx, g.service.ID, booking.Changes{"price": 4000, "is_active": false})
	mustNil(t, err)
	if updated.Price != 4000 || updated.IsActive {
		t.Fatalf("changes not applied: %+v", updated)
	}
	if updated.Name != stored.Name || updated.DurationMinutes != stored.DurationMinutes {
		t.Fatalf("untouched columns changed: %+v", updated)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Fatalf("earlier change lost: %v", updated.Description)
	}
	if !updated.UpdatedAt.After(stored.UpdatedAt) {
		t.Fatalf("updated_at not refreshed")
	}

	cleared, err := s.services.Update(ctx, g.service.ID, booking.Changes{"description": nil})
	mustNil(t, err)
	if cleared.Description != nil {
		t.Fatalf("expected description cleared")
	}

	_, err = s.services.Update(ctx, uuid.New(), booking.Changes{"price": 1})
	mustNotFound(t, err)
}

func TestSurchargeRepositoryScopesByBarber(t *testing.T) {
	s := newStore(testDB(t))
	ctx := context.Background()
	g := seedGraph(t, s, false)

	other := models.Barber{
		ShopID:       g.shop.ID,
		Name:         "Blake",
		DaysOn:       []string{"wed"},
		WorkingHours: datatypes.JSONSlice[models.WorkingHour]{},
	}
	mustNil(t, s.barbers.Create(ctx, &other))

	_, err := s.surcharges.Get(ctx, other.ID, g.surcharge.ID)
	mustNotFound(t, err)
	_, err = s.surcharges.Update(ctx, other.ID, g.surcharge.ID, booking.Changes{"max_value": 1})
	mustNotFound(t, err)
	mustNotFound(t, s.surcharges.Delete(ctx, other.ID, g.surcharge.ID))

	forced := models.SurchargeSetting{BarberID: g.barber.ID, Type: "late"}
	mustNil(t, s.surcharges.Create(ctx, other.ID, &forced))
	if forced.BarberID != other.ID {
		t.Fatalf("create did not force barber_id")
	}

	rows, err := s.surcharges.List(ctx, g.barber.ID)
	mustNil(t, err)
	if len(rows) != 1 || rows[0].ID != g.surcharge.ID {
		t.Fatalf("unexpected scoped list: %+v", rows)
	}

	got, err := s.surcharges.Get(ctx, g.barber.ID, g.surcharge.ID)
	mustNil(t, err)
	if got.MaxValue != 50 {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestAuditRepositoryFiltersAndPages(t *testing.T) {
	db := testDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	entity := "test_" + uuid.NewString()[:8]
	target := uuid.New()
	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		mustNil(t, repo.Insert(ctx, &models.AuditLog{
			Action:    entity + "_updated",
			Entity:    entity,
			EntityID:  target,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	mustNil(t, repo.Insert(ctx, &models.AuditLog{Action: entity + "_created", Entity: entity, EntityID: uuid.New(), CreatedAt: base}))

	logs, total, err := repo.List(ctx, booking.AuditFilter{Entity: entity, EntityID: &target, Limit: 2})
	mustNil(t, err)
	if total != 3 || len(logs) != 2 {
		t.Fatalf("expected 2 of 3, got %d of %d", len(logs), total)
	}
	if !logs[0].CreatedAt.After(logs[1].CreatedAt) {
		t.Fatalf("expected newest first")
	}

	_, total, err = repo.List(ctx, booking.AuditFilter{Entity: entity, Action: entity + "_created", Limit: 10})
	mustNil(t, err)
	if total != 1 {
		t.Fatalf("action filter not applied: %d", total)
	}
}

func TestBarberRoundTripsArrayAndJSONColumns(t *testing.T) {
	s := newStore(testDB(t))
	ctx := context.Background()
	g := seedGraph(t, s, false)

	got, err := s.barbers.Get(ctx, g.barber.ID)
	mustNil(t, err)
	if len(got.DaysOn) != 2 || got.DaysOn[1] != "tue" {
		t.Fatalf("days_on lost: %v", got.DaysOn)
	}
	if len(got.WorkingHours) != 1 || got.WorkingHours[0].LunchEnd != "13:00" {
		t.Fatalf("working_hours lost: %+v", got.WorkingHours)
	}

	shops, err := s.shops.List(ctx)
	mustNil(t, err)
	for i := 1; i < len(shops); i++ {
		if shops[i].CreatedAt.Before(shops[i-1].CreatedAt) {
			t.Fatalf("list not ordered by created_at")
		}
	}
}
