package postgres

import (
	"context"
	"time"

	"accountd/internal/domain/entity"
	"accountd/internal/domain/repository"
	"accountd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resetChallengeRepository implements the repository.ResetChallengeRepository interface using GORM.
type resetChallengeRepository struct {
	db *gorm.DB
}

// NewResetChallengeRepository is the constructor for resetChallengeRepository.
func NewResetChallengeRepository(db *gorm.DB) repository.ResetChallengeRepository {
	return &resetChallengeRepository{db: db}
}

// FindByTokenHash retrieves the challenge matching a token hash.
func (repo *resetChallengeRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordResetChallenge, error) {
	var challengeM model.ResetChallengeModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by token hash")
	}

	return toResetChallengeDomain(&challengeM), nil
}

// Create persists a new challenge.
func (repo *resetChallengeRepository) Create(ctx context.Context, challenge *entity.PasswordResetChallenge) error {
	challengeM := fromResetChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		if isSerializationFailure(err) {
			return errors.Wrap(repository.ErrTransientConflict, err.Error())
		}

		return errors.Wrap(err, "failed to create reset challenge")
	}

	challenge.CreatedAt = challengeM.CreatedAt
	challenge.UpdatedAt = challengeM.UpdatedAt

	return nil
}

// Update modifies an existing challenge.
func (repo *resetChallengeRepository) Update(ctx context.Context, challenge *entity.PasswordResetChallenge) error {
	challengeM := fromResetChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Save(challengeM).Error; err != nil {
		if isSerializationFailure(err) {
			return errors.Wrap(repository.ErrTransientConflict, err.Error())
		}

		return errors.Wrap(err, "failed to update reset challenge")
	}

	challenge.UpdatedAt = challengeM.UpdatedAt

	return nil
}

// DeleteByEmail removes every reset challenge for an email.
func (repo *resetChallengeRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.ResetChallengeModel{}).Error
	if err != nil {
		if isSerializationFailure(err) {
			return errors.Wrap(repository.ErrTransientConflict, err.Error())
		}

		return errors.Wrap(err, "failed to delete reset challenges by email")
	}

	return nil
}

// DeleteExpired prunes challenges whose expiry is in the past.
func (repo *resetChallengeRepository) DeleteExpired(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.ResetChallengeModel{}).Error

	return errors.Wrap(err, "failed to delete expired reset challenges")
}

// --- Mapper Functions ---

func toResetChallengeDomain(data *model.ResetChallengeModel) *entity.PasswordResetChallenge {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetChallenge{
		ID:        data.ID,
		Email:     data.Email,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		Attempts:  data.Attempts,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromResetChallengeDomain(data *entity.PasswordResetChallenge) *model.ResetChallengeModel {
	if data == nil {
		return nil
	}

	return &model.ResetChallengeModel{
		ID:        data.ID,
		Email:     data.Email,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		Used:      data.Used,
		Attempts:  data.Attempts,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
