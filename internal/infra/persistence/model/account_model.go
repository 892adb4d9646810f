// Package model contains the GORM persistence models. These mirror the
// database schema and are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"strings"
	"time"

	"accountd/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountModel is the persistence model for the accounts table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	PasswordHash *string   `gorm:"column:password_hash;type:varchar(255)"`
	PasswordSet  bool      `gorm:"column:password_set;not null;default:false"`
	GoogleID     *string   `gorm:"column:google_id;type:varchar(255);uniqueIndex"`
	Roles        string    `gorm:"column:roles;type:text;not null;default:'user'"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// RolesToColumn serializes a role set for storage.
func RolesToColumn(roles entity.Roles) string {
	return strings.Join(roles.Normalized().ToStrings(), ",")
}

// RolesFromColumn deserializes a stored role set.
func RolesFromColumn(column string) entity.Roles {
	if column == "" {
		return entity.Roles{entity.RoleUser}
	}

	return entity.RolesFromStrings(strings.Split(column, ",")).Normalized()
}
