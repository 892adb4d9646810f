package postgres

import (
	"context"

	"accountd/internal/domain/entity"
	"accountd/internal/domain/repository"
	"accountd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface using GORM.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create persists one audit record.
func (repo *auditLogRepository) Create(ctx context.Context, record *entity.AuditRecord) error {
	recordM := &model.AuditLogModel{
		ID:       record.ID,
		ActorID:  record.ActorID,
		TargetID: record.TargetID,
		Action:   record.Action,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to create audit record")
	}

	record.CreatedAt = recordM.CreatedAt

	return nil
}
