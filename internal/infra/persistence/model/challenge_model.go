package model

import (
	"time"

	"github.com/google/uuid"
)

// OtpChallengeModel is the persistence model for the otp_challenges table.
// Expiry is enforced at read time and by the janitor; Postgres has no TTL
// index equivalent.
type OtpChallengeModel struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Email         string     `gorm:"column:email;type:varchar(255);not null;index"`
	Code          string     `gorm:"column:code;type:varchar(6);not null"`
	ExpiresAt     time.Time  `gorm:"column:expires_at;not null;index"`
	Verified      bool       `gorm:"column:verified;not null;default:false"`
	Attempts      int        `gorm:"column:attempts;not null;default:0"`
	Generation    int        `gorm:"column:generation;not null;default:1"`
	RequesterIP   string     `gorm:"column:requester_ip;type:varchar(45)"`
	UserAgent     string     `gorm:"column:user_agent;type:varchar(512)"`
	LastAttemptAt *time.Time `gorm:"column:last_attempt_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (OtpChallengeModel) TableName() string {
	return "otp_challenges"
}

// ResetChallengeModel is the persistence model for the reset_challenges
// table. Only the token hash is stored, never the raw token.
type ResetChallengeModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;index"`
	TokenHash string    `gorm:"column:token_hash;type:char(64);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	Used      bool      `gorm:"column:used;not null;default:false"`
	Attempts  int       `gorm:"column:attempts;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (ResetChallengeModel) TableName() string {
	return "reset_challenges"
}
