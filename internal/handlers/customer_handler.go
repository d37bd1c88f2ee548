package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CustomerHandler struct {
	resource[models.Customer]
}

func NewCustomerHandler(repo booking.Repository[models.Customer], events *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{resource[models.Customer]{
		entity:   "customer",
		param:    "customer_id",
		repo:     repo,
		events:   events,
		newPatch: func() any { return &UpdateCustomerRequest{} },
	}}
}

type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Email *string `json:"email" binding:"omitnil,email,max=255"`
	Phone string  `json:"phone" binding:"required,max=20"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name" binding:"omitnil,min=1,max=255"`
	Email *string `json:"email" binding:"omitnil,email,max=255" patch:"nullable"`
	Phone *string `json:"phone" binding:"omitnil,min=1,max=20"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if !bindCreate(c, &req) {
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := h.repo.Create(c.Request.Context(), &customer); err != nil {
		storeError(c, h.entity, err)
		return
	}
	h.created(c, customer.ID, &customer)
}
