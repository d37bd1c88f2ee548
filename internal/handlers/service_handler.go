package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceHandler struct {
	resource[models.Service]
}

func NewServiceHandler(repo booking.Repository[models.Service], events *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{resource[models.Service]{
		entity:   "service",
		param:    "service_id",
		repo:     repo,
		events:   events,
		newPatch: func() any { return &UpdateServiceRequest{} },
	}}
}

type CreateServiceRequest struct {
	ShopID          string  `json:"shop_id" binding:"required,uuid"`
	Name            string  `json:"name" binding:"required,max=255"`
	Description     *string `json:"description"`
	Price           *int    `json:"price" binding:"required"`
	DurationMinutes *int    `json:"duration_minutes"`
	IsActive        *bool   `json:"is_active"`
}

// shop_id is not part of the update shape; a service stays with its shop.
type UpdateServiceRequest struct {
	Name            *string `json:"name" binding:"omitnil,min=1,max=255"`
	Description     *string `json:"description" patch:"nullable"`
	Price           *int    `json:"price"`
	DurationMinutes *int    `json:"duration_minutes"`
	IsActive        *bool   `json:"is_active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindCreate(c, &req) {
		return
	}

	service := models.Service{
		ShopID:          uuid.MustParse(req.ShopID),
		Name:            req.Name,
		Description:     req.Description,
		Price:           *req.Price,
		DurationMinutes: valueOr(req.DurationMinutes, booking.DefaultServiceDuration),
		IsActive:        valueOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), &service); err != nil {
		storeError(c, h.entity, err)
		return
	}
	h.created(c, service.ID, &service)
}
