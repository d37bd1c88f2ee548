package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Action   string    `gorm:"size:50;not null;index" json:"action"`
	Entity   string    `gorm:"size:50;index" json:"entity"`
	EntityID uuid.UUID `gorm:"type:uuid;index" json:"entity_id"`
	Metadata string    `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
