package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Logger persists events as audit_logs rows.
type Logger struct {
	repo booking.AuditRepository
}

func New(repo booking.AuditRepository) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Record(ctx context.Context, ev Event) error {
	var metaJSON string
	if len(ev.Metadata) > 0 {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return l.repo.Insert(ctx, &models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: ev.At,
	})
}
