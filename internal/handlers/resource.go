package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// SHARED RESOURCE OPERATIONS
// ======================================================

// resource implements list, get, partial update and delete for one
// top-level entity. Entity handlers embed it and add Create.
type resource[T any] struct {
	entity string
	param  string
	repo   booking.Repository[T]
	events *audit.Dispatcher

	// newPatch returns a pointer to the entity's update shape.
	newPatch func() any
}

func (r *resource[T]) List(c *gin.Context) {
	rows, err := r.repo.List(c.Request.Context())
	if err != nil {
		storeError(c, r.entity, err)
		return
	}
	httpresp.List(c, rows)
}

func (r *resource[T]) Get(c *gin.Context) {
	id, ok := pathID(c, r.param)
	if !ok {
		return
	}

	row, err := r.repo.Get(c.Request.Context(), id)
	if err != nil {
		storeError(c, r.entity, err)
		return
	}
	httpresp.OK(c, row)
}

func (r *resource[T]) Update(c *gin.Context) {
	id, ok := pathID(c, r.param)
	if !ok {
		return
	}

	changes, err := validators.BindPatch(c, r.newPatch())
	if err != nil {
		httperr.Validation(c, err)
		return
	}

	row, err := r.repo.Update(c.Request.Context(), id, changes)
	if err != nil {
		storeError(c, r.entity, err)
		return
	}

	if len(changes) > 0 {
		r.events.Dispatch(audit.Event{
			Action:   r.entity + "_updated",
			Entity:   r.entity,
			EntityID: id,
			Metadata: map[string]any{"fields": changes.Keys()},
		})
	}
	httpresp.OK(c, row)
}

func (r *resource[T]) Delete(c *gin.Context) {
	id, ok := pathID(c, r.param)
	if !ok {
		return
	}

	if err := r.repo.Delete(c.Request.Context(), id); err != nil {
		storeError(c, r.entity, err)
		return
	}

	r.events.Dispatch(audit.Event{
		Action:   r.entity + "_deleted",
		Entity:   r.entity,
		EntityID: id,
	})
	httpresp.NoContent(c)
}

func (r *resource[T]) created(c *gin.Context, id uuid.UUID, row *T) {
	r.events.Dispatch(audit.Event{
		Action:   r.entity + "_created",
		Entity:   r.entity,
		EntityID: id,
	})
	httpresp.Created(c, row)
}

// ======================================================
// HELPERS
// ======================================================

// pathID parses a UUID path parameter. A malformed id is a validation
// failure on that parameter.
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		bindError(c, param, "must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// storeError answers 404 for missing rows and an opaque 500 for anything
// else. Server errors are logged with the PostgreSQL code when there is one.
func storeError(c *gin.Context, entity string, err error) {
	if errors.Is(err, booking.ErrNotFound) {
		httperr.NotFound(c, "not_found", fmt.Sprintf("%s not found.", entity))
		return
	}

	event := zerolog.Ctx(c.Request.Context()).Error().Err(err).
		Str("entity", entity).
		Str("route", c.FullPath())
	if pgErr, ok := httperr.PgError(err); ok {
		event = event.Str("sqlstate", pgErr.Code).Str("constraint", pgErr.ConstraintName)
	}
	if httperr.IsForeignKeyViolation(err) {
		event.Msg("foreign key violation")
	} else {
		event.Msg("store operation failed")
	}

	httperr.Internal(c, "internal_error", "Internal server error.")
}

func bindCreate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Validation(c, err)
		return false
	}
	return true
}

func valueOr[V any](p *V, def V) V {
	if p == nil {
		return def
	}
	return *p
}

func bindError(c *gin.Context, field, reason string) {
	httperr.Validation(c, httperr.Invalid(field, reason))
}
