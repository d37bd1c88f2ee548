package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const surchargeEntity = "surcharge_setting"

// SurchargeHandler serves /barbers/:barber_id/surcharges. Every operation
// is scoped to the barber in the path; a setting owned by another barber
// answers 404.
type SurchargeHandler struct {
	repo   booking.SurchargeRepository
	events *audit.Dispatcher
}

func NewSurchargeHandler(repo booking.SurchargeRepository, events *audit.Dispatcher) *SurchargeHandler {
	return &SurchargeHandler{repo: repo, events: events}
}

// barber_id in the body is ignored; the path decides ownership.
type CreateSurchargeRequest struct {
	Type     string `json:"type" binding:"required,max=20"`
	MaxValue *int   `json:"max_value"`
	MinValue *int   `json:"min_value"`
	IsActive *bool  `json:"is_active"`
}

type UpdateSurchargeRequest struct {
	Type     *string `json:"type" binding:"omitnil,min=1,max=20"`
	MaxValue *int    `json:"max_value"`
	MinValue *int    `json:"min_value"`
	IsActive *bool   `json:"is_active"`
}

func (h *SurchargeHandler) ids(c *gin.Context, withSurcharge bool) (barberID, surchargeID uuid.UUID, ok bool) {
	if barberID, ok = pathID(c, "barber_id"); !ok {
		return
	}
	if withSurcharge {
		surchargeID, ok = pathID(c, "surcharge_id")
	}
	return
}

func (h *SurchargeHandler) dispatch(action string, barberID, id uuid.UUID, meta map[string]any) {
	if meta == nil {
		meta = map[string]any{}
	}
	meta["barber_id"] = barberID.String()

	h.events.Dispatch(audit.Event{
		Action:   surchargeEntity + "_" + action,
		Entity:   surchargeEntity,
		EntityID: id,
		Metadata: meta,
	})
}

func (h *SurchargeHandler) Create(c *gin.Context) {
	barberID, _, ok := h.ids(c, false)
	if !ok {
		return
	}

	var req CreateSurchargeRequest
	if !bindCreate(c, &req) {
		return
	}

	setting := models.SurchargeSetting{
		Type:     req.Type,
		MaxValue: valueOr(req.MaxValue, booking.DefaultSurchargeMaxValue),
		MinValue: valueOr(req.MinValue, booking.DefaultSurchargeMinValue),
		IsActive: valueOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), barberID, &setting); err != nil {
		storeError(c, surchargeEntity, err)
		return
	}

	h.dispatch("created", barberID, setting.ID, nil)
	httpresp.Created(c, setting)
}

func (h *SurchargeHandler) List(c *gin.Context) {
	barberID, _, ok := h.ids(c, false)
	if !ok {
		return
	}

	rows, err := h.repo.List(c.Request.Context(), barberID)
	if err != nil {
		storeError(c, surchargeEntity, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *SurchargeHandler) Get(c *gin.Context) {
	barberID, id, ok := h.ids(c, true)
	if !ok {
		return
	}

	row, err := h.repo.Get(c.Request.Context(), barberID, id)
	if err != nil {
		storeError(c, surchargeEntity, err)
		return
	}
	httpresp.OK(c, row)
}

func (h *SurchargeHandler) Update(c *gin.Context) {
	barberID, id, ok := h.ids(c, true)
	if !ok {
		return
	}

	changes, err := validators.BindPatch(c, &UpdateSurchargeRequest{})
	if err != nil {
		httperr.Validation(c, err)
		return
	}

	row, err := h.repo.Update(c.Request.Context(), barberID, id, changes)
	if err != nil {
		storeError(c, surchargeEntity, err)
		return
	}

	if len(changes) > 0 {
		h.dispatch("updated", barberID, id, map[string]any{"fields": changes.Keys()})
	}
	httpresp.OK(c, row)
}

func (h *SurchargeHandler) Delete(c *gin.Context) {
	barberID, id, ok := h.ids(c, true)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), barberID, id); err != nil {
		storeError(c, surchargeEntity, err)
		return
	}

	h.dispatch("deleted", barberID, id, nil)
	httpresp.NoContent(c)
}
