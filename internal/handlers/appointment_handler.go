package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	resource[models.Appointment]
}

func NewAppointmentHandler(repo booking.Repository[models.Appointment], events *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{resource[models.Appointment]{
		entity:   "appointment",
		param:    "appointment_id",
		repo:     repo,
		events:   events,
		newPatch: func() any { return &UpdateAppointmentRequest{} },
	}}
}

// ======================================================
// REQUESTS
// ======================================================

// Prices are stored as given; nothing checks them against each other.
type CreateAppointmentRequest struct {
	BarberID        string  `json:"barber_id" binding:"required,uuid"`
	CustomerID      string  `json:"customer_id" binding:"required,uuid"`
	ServiceID       string  `json:"service_id" binding:"required,uuid"`
	AppointmentDate string  `json:"appointment_date" binding:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes *int    `json:"duration_minutes" binding:"required"`
	Price           *int    `json:"price" binding:"required"`
	Discount        *int    `json:"discount"`
	BookingFee      *int    `json:"booking_fee"`
	Surcharge       *int    `json:"surcharge"`
	Status          *string `json:"status" binding:"omitnil,min=1,max=20"`
	Notes           *string `json:"notes"`
}

// The barber, customer and service of an appointment are fixed at creation.
type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointment_date" binding:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes *int    `json:"duration_minutes"`
	Price           *int    `json:"price"`
	Discount        *int    `json:"discount"`
	BookingFee      *int    `json:"booking_fee"`
	Surcharge       *int    `json:"surcharge"`
	Status          *string `json:"status" binding:"omitnil,min=1,max=20"`
	Notes           *string `json:"notes" patch:"nullable"`
}

func (r *UpdateAppointmentRequest) Normalize(changes booking.Changes) error {
	if s, ok := changes["appointment_date"].(string); ok {
		at, err := time.Parse(validators.DateTimeLayout, s)
		if err != nil {
			return httperr.Invalid("appointment_date", "must be an RFC 3339 timestamp")
		}
		changes["appointment_date"] = at
	}
	return nil
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindCreate(c, &req) {
		return
	}

	at, err := time.Parse(validators.DateTimeLayout, req.AppointmentDate)
	if err != nil {
		bindError(c, "appointment_date", "must be an RFC 3339 timestamp")
		return
	}

	status := valueOr(req.Status, string(booking.InitialStatus()))
	if !booking.Status(status).Known() {
		zerolog.Ctx(c.Request.Context()).Warn().
			Str("status", status).
			Msg("appointment created with unrecognized status")
	}

	appt := models.Appointment{
		BarberID:        uuid.MustParse(req.BarberID),
		CustomerID:      uuid.MustParse(req.CustomerID),
		ServiceID:       uuid.MustParse(req.ServiceID),
		AppointmentDate: at,
		DurationMinutes: *req.DurationMinutes,
		Price:           *req.Price,
		Discount:        valueOr(req.Discount, 0),
		BookingFee:      valueOr(req.BookingFee, 0),
		Surcharge:       valueOr(req.Surcharge, 0),
		Status:          status,
		Notes:           req.Notes,
	}

	if err := h.repo.Create(c.Request.Context(), &appt); err != nil {
		storeError(c, h.entity, err)
		return
	}
	h.created(c, appt.ID, &appt)
}
