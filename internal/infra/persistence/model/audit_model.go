package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel is the persistence model for the audit_logs table.
// Append-only; rows are never updated or deleted by the application.
type AuditLogModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ActorID   uuid.UUID `gorm:"column:actor_id;type:uuid;not null;index"`
	TargetID  uuid.UUID `gorm:"column:target_id;type:uuid;not null;index"`
	Action    string    `gorm:"column:action;type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
