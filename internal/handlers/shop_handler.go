package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ShopHandler struct {
	resource[models.Shop]
}

func NewShopHandler(repo booking.Repository[models.Shop], events *audit.Dispatcher) *ShopHandler {
	return &ShopHandler{resource[models.Shop]{
		entity:   "shop",
		param:    "shop_id",
		repo:     repo,
		events:   events,
		newPatch: func() any { return &UpdateShopRequest{} },
	}}
}

type CreateShopRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone" binding:"omitnil,max=20"`
	Email    *string `json:"email" binding:"omitnil,email,max=255"`
	Timezone *string `json:"timezone" binding:"omitnil,timezone,max=50"`
}

type UpdateShopRequest struct {
	Name     *string `json:"name" binding:"omitnil,min=1,max=255"`
	Address  *string `json:"address" patch:"nullable"`
	Phone    *string `json:"phone" binding:"omitnil,max=20" patch:"nullable"`
	Email    *string `json:"email" binding:"omitnil,email,max=255" patch:"nullable"`
	Timezone *string `json:"timezone" binding:"omitnil,timezone,max=50"`
}

func (h *ShopHandler) Create(c *gin.Context) {
	var req CreateShopRequest
	if !bindCreate(c, &req) {
		return
	}

	shop := models.Shop{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		Timezone: valueOr(req.Timezone, timezone.DefaultTimezone),
	}

	if err := h.repo.Create(c.Request.Context(), &shop); err != nil {
		storeError(c, h.entity, err)
		return
	}
	h.created(c, shop.ID, &shop)
}
