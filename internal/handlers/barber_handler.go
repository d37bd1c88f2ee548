package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarberHandler struct {
	resource[models.Barber]
}

func NewBarberHandler(repo booking.Repository[models.Barber], events *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{resource[models.Barber]{
		entity:   "barber",
		param:    "barber_id",
		repo:     repo,
		events:   events,
		newPatch: func() any { return &UpdateBarberRequest{} },
	}}
}

type CreateBarberRequest struct {
	ShopID       string               `json:"shop_id" binding:"required,uuid"`
	Name         string               `json:"name" binding:"required,max=255"`
	Email        *string              `json:"email" binding:"omitnil,email,max=255"`
	Phone        *string              `json:"phone" binding:"omitnil,max=20"`
	DaysOn       []string             `json:"days_on" binding:"required,dive,dayname"`
	WorkingHours []models.WorkingHour `json:"working_hours" binding:"required,dive"`
	IsActive     *bool                `json:"is_active"`
}

// shop_id is not part of the update shape; a barber stays with its shop.
type UpdateBarberRequest struct {
	Name         *string               `json:"name" binding:"omitnil,min=1,max=255"`
	Email        *string               `json:"email" binding:"omitnil,email,max=255" patch:"nullable"`
	Phone        *string               `json:"phone" binding:"omitnil,max=20" patch:"nullable"`
	DaysOn       *[]string             `json:"days_on" binding:"omitnil,dive,dayname"`
	WorkingHours *[]models.WorkingHour `json:"working_hours" binding:"omitnil,dive"`
	IsActive     *bool                 `json:"is_active"`
}

func (r *UpdateBarberRequest) Normalize(changes booking.Changes) error {
	if days, ok := changes["days_on"].([]string); ok {
		changes["days_on"] = pq.StringArray(days)
	}
	if hours, ok := changes["working_hours"].([]models.WorkingHour); ok {
		changes["working_hours"] = datatypes.JSONSlice[models.WorkingHour](hours)
	}
	return nil
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if !bindCreate(c, &req) {
		return
	}

	barber := models.Barber{
		ShopID:       uuid.MustParse(req.ShopID),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DaysOn:       pq.StringArray(req.DaysOn),
		WorkingHours: datatypes.JSONSlice[models.WorkingHour](req.WorkingHours),
		IsActive:     valueOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), &barber); err != nil {
		storeError(c, h.entity, err)
		return
	}
	h.created(c, barber.ID, &barber)
}
