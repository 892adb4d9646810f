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

// otpChallengeRepository implements the repository.OtpChallengeRepository interface using GORM.
type otpChallengeRepository struct {
	db *gorm.DB
}

// NewOtpChallengeRepository is the constructor for otpChallengeRepository.
func NewOtpChallengeRepository(db *gorm.DB) repository.OtpChallengeRepository {
	return &otpChallengeRepository{db: db}
}

// FindByEmailAndCode retrieves the challenge matching both fields.
func (repo *otpChallengeRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*entity.OtpChallenge, error) {
	var challengeM model.OtpChallengeModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND code = ?", email, code).
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by email and code")
	}

	return toOtpChallengeDomain(&challengeM), nil
}

// FindLatestByEmail retrieves the most recently issued challenge for an email.
func (repo *otpChallengeRepository) FindLatestByEmail(ctx context.Context, email string) (*entity.OtpChallenge, error) {
	var challengeM model.OtpChallengeModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest challenge by email")
	}

	return toOtpChallengeDomain(&challengeM), nil
}

// CountIssuedSince counts challenges issued for an email at or after the given instant.
// Deleted predecessors still count: the generation column carries the tally forward.
func (repo *otpChallengeRepository) CountIssuedSince(ctx context.Context, email string, since time.Time) (int, error) {
	var challengeM model.OtpChallengeModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND created_at >= ?", email, since).
		Order("created_at DESC").
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to count issued challenges")
	}

	return challengeM.Generation, nil
}

// Create persists a new challenge.
func (repo *otpChallengeRepository) Create(ctx context.Context, challenge *entity.OtpChallenge) error {
	challengeM := fromOtpChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		if isSerializationFailure(err) {
			return errors.Wrap(repository.ErrTransientConflict, err.Error())
		}

		return errors.Wrap(err, "failed to create challenge")
	}

	challenge.CreatedAt = challengeM.CreatedAt
	challenge.UpdatedAt = challengeM.UpdatedAt

	return nil
}

// Update modifies an existing challenge.
func (repo *otpChallengeRepository) Update(ctx context.Context, challenge *entity.OtpChallenge) error {
	challengeM := fromOtpChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Save(challengeM).Error; err != nil {
		if isSerializationFailure(err) {
			return errors.Wrap(repository.ErrTransientConflict, err.Error())
		}

		return errors.Wrap(err, "failed to update challenge")
	}

	challenge.UpdatedAt = challengeM.UpdatedAt

	return nil
}

// DeleteByEmail removes every challenge for an email.
func (repo *otpChallengeRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.OtpChallengeModel{}).Error
	if err != nil {
		if isSerializationFailure(err) {
			return errors.Wrap(repository.ErrTransientConflict, err.Error())
		}

		return errors.Wrap(err, "failed to delete challenges by email")
	}

	return nil
}

// DeleteExpired prunes challenges whose expiry is in the past.
func (repo *otpChallengeRepository) DeleteExpired(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.OtpChallengeModel{}).Error

	return errors.Wrap(err, "failed to delete expired challenges")
}

// --- Mapper Functions ---

func toOtpChallengeDomain(data *model.OtpChallengeModel) *entity.OtpChallenge {
	if data == nil {
		return nil
	}

	return &entity.OtpChallenge{
		ID:            data.ID,
		Email:         data.Email,
		Code:          data.Code,
		ExpiresAt:     data.ExpiresAt,
		Verified:      data.Verified,
		Attempts:      data.Attempts,
		Generation:    data.Generation,
		RequesterIP:   data.RequesterIP,
		UserAgent:     data.UserAgent,
		LastAttemptAt: data.LastAttemptAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOtpChallengeDomain(data *entity.OtpChallenge) *model.OtpChallengeModel {
	if data == nil {
		return nil
	}

	return &model.OtpChallengeModel{
		ID:            data.ID,
		Email:         data.Email,
		Code:          data.Code,
		ExpiresAt:     data.ExpiresAt,
		Verified:      data.Verified,
		Attempts:      data.Attempts,
		Generation:    data.Generation,
		RequesterIP:   data.RequesterIP,
		UserAgent:     data.UserAgent,
		LastAttemptAt: data.LastAttemptAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
