package impl

import (
	"context"
	"regexp"
	"testing"
	"time"

	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	"accountd/internal/domain/service"
	mockRepo "accountd/internal/mocks/repository"
	mockSvc "accountd/internal/mocks/service"
	"accountd/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// otpServiceFixtures holds all test dependencies for otp service tests.
type otpServiceFixtures struct {
	service    usecase.OtpUsecase
	txManager  *mockRepo.MockTransactionManager
	otpRepo    *mockRepo.MockOtpChallengeRepository
	mailSender *mockSvc.MockMailSender
}

func createTestOtpService(t *testing.T) otpServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	otpRepo := mockRepo.NewMockOtpChallengeRepository(t)
	mailSender := mockSvc.NewMockMailSender(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().OtpChallengeRepo().Return(otpRepo).Maybe()
	stubTx(txManager, factory)

	svc := NewOtpService(OtpServiceParams{
		TxManager:  txManager,
		MailSender: mailSender,
		Logger:     testLogger(),
	})

	return otpServiceFixtures{
		service:    svc,
		txManager:  txManager,
		otpRepo:    otpRepo,
		mailSender: mailSender,
	}
}

func TestOtpService_Issue_Success(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"

	fx.otpRepo.EXPECT().
		CountIssuedSince(mock.Anything, email, mock.AnythingOfType("time.Time")).
		Return(0, nil)
	fx.otpRepo.EXPECT().DeleteByEmail(mock.Anything, email).Return(nil)

	var created *entity.OtpChallenge
	fx.otpRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.OtpChallenge")).
		Run(func(_ context.Context, challenge *entity.OtpChallenge) {
			created = challenge
		}).
		Return(nil)

	var mailed *service.MailMessage
	fx.mailSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
		Run(func(_ context.Context, msg *service.MailMessage) {
			mailed = msg
		}).
		Return(nil)

	challenge, err := fx.service.Issue(ctx, &usecase.IssueOtpInput{Email: "Student@IIITL.ac.in"})

	require.NoError(t, err)
	require.NotNil(t, challenge)
	assert.Equal(t, email, challenge.Email)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), challenge.Code)
	assert.Equal(t, 1, challenge.Generation)
	assert.False(t, challenge.Verified)
	assert.True(t, challenge.ExpiresAt.After(time.Now()))

	require.NotNil(t, created)
	assert.Equal(t, challenge.ID, created.ID)

	require.NotNil(t, mailed)
	assert.Equal(t, email, mailed.Recipient)
	assert.Contains(t, mailed.TextBody, challenge.Code)
}

func TestOtpService_Issue_ReplacesPredecessorBeforeCreate(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"

	var deletedBeforeCreate bool
	fx.otpRepo.EXPECT().
		CountIssuedSince(mock.Anything, email, mock.AnythingOfType("time.Time")).
		Return(2, nil)
	fx.otpRepo.EXPECT().
		DeleteByEmail(mock.Anything, email).
		Run(func(_ context.Context, _ string) {
			deletedBeforeCreate = true
		}).
		Return(nil)
	fx.otpRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.OtpChallenge")).
		Run(func(_ context.Context, challenge *entity.OtpChallenge) {
			assert.True(t, deletedBeforeCreate, "predecessor must be removed before the replacement is created")
			assert.Equal(t, 3, challenge.Generation)
		}).
		Return(nil)
	fx.mailSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
		Return(nil)

	_, err := fx.service.Issue(ctx, &usecase.IssueOtpInput{Email: email})

	require.NoError(t, err)
}

func TestOtpService_Issue_DailyLimitReached(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"

	fx.otpRepo.EXPECT().
		CountIssuedSince(mock.Anything, email, mock.AnythingOfType("time.Time")).
		Return(defaultOtpMaxDailyIssues, nil)

	challenge, err := fx.service.Issue(ctx, &usecase.IssueOtpInput{Email: email})

	require.Error(t, err)
	assert.Nil(t, challenge)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpIssueLimit))
}

func TestOtpService_Issue_MailFailureDoesNotFailIssue(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"

	fx.otpRepo.EXPECT().
		CountIssuedSince(mock.Anything, email, mock.AnythingOfType("time.Time")).
		Return(0, nil)
	fx.otpRepo.EXPECT().DeleteByEmail(mock.Anything, email).Return(nil)
	fx.otpRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.OtpChallenge")).
		Return(nil)
	fx.mailSender.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
		Return(errors.New("smtp down"))

	challenge, err := fx.service.Issue(ctx, &usecase.IssueOtpInput{Email: email})

	require.NoError(t, err)
	assert.NotNil(t, challenge)
}

func TestOtpService_Verify_Success(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"
	challenge := testChallenge(email, "042187")

	fx.otpRepo.EXPECT().FindLatestByEmail(mock.Anything, email).Return(challenge, nil)
	fx.otpRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.OtpChallenge")).
		Run(func(_ context.Context, updated *entity.OtpChallenge) {
			assert.True(t, updated.Verified)
			assert.NotNil(t, updated.LastAttemptAt)
		}).
		Return(nil)

	verified, err := fx.service.Verify(ctx, &usecase.VerifyOtpInput{Email: email, Code: "042187"})

	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.True(t, verified.Verified)
}

func TestOtpService_Verify_AlreadyVerifiedIsRejected(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"
	challenge := testChallenge(email, "042187")
	challenge.Verified = true

	fx.otpRepo.EXPECT().FindLatestByEmail(mock.Anything, email).Return(challenge, nil)

	_, err := fx.service.Verify(ctx, &usecase.VerifyOtpInput{Email: email, Code: "042187"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpAlreadyUsed))
}

func TestOtpService_Verify_VerifiedChallengeRejectsWrongCode(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"
	challenge := testChallenge(email, "123456")
	challenge.Verified = true

	fx.otpRepo.EXPECT().FindLatestByEmail(mock.Anything, email).Return(challenge, nil)

	// Knowing only the email must never yield a verification success.
	verified, err := fx.service.Verify(ctx, &usecase.VerifyOtpInput{Email: email, Code: "000000"})

	require.Error(t, err)
	assert.Nil(t, verified)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpAlreadyUsed))
}

func TestOtpService_Verify_NoChallenge(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()

	fx.otpRepo.EXPECT().
		FindLatestByEmail(mock.Anything, "nobody@iiitl.ac.in").
		Return(nil, repository.ErrChallengeNotFound)

	_, err := fx.service.Verify(ctx, &usecase.VerifyOtpInput{Email: "nobody@iiitl.ac.in", Code: "000000"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpNotFound))
}

func TestOtpService_Verify_Expired(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"
	challenge := testChallenge(email, "042187")
	challenge.ExpiresAt = time.Now().Add(-time.Minute)

	fx.otpRepo.EXPECT().FindLatestByEmail(mock.Anything, email).Return(challenge, nil)

	_, err := fx.service.Verify(ctx, &usecase.VerifyOtpInput{Email: email, Code: "042187"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpExpired))
}

func TestOtpService_Verify_MismatchRecordsAttempt(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"
	challenge := testChallenge(email, "042187")

	fx.otpRepo.EXPECT().FindLatestByEmail(mock.Anything, email).Return(challenge, nil)
	fx.otpRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.OtpChallenge")).
		Run(func(_ context.Context, updated *entity.OtpChallenge) {
			assert.Equal(t, 1, updated.Attempts)
			assert.False(t, updated.Verified)
		}).
		Return(nil)

	_, err := fx.service.Verify(ctx, &usecase.VerifyOtpInput{Email: email, Code: "999999"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredCode))
}

func TestOtpService_Verify_FinalMismatchDestroysChallenge(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"
	challenge := testChallenge(email, "042187")
	challenge.Attempts = defaultOtpMaxAttempts - 1

	fx.otpRepo.EXPECT().FindLatestByEmail(mock.Anything, email).Return(challenge, nil)
	fx.otpRepo.EXPECT().DeleteByEmail(mock.Anything, email).Return(nil)

	_, err := fx.service.Verify(ctx, &usecase.VerifyOtpInput{Email: email, Code: "999999"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpAttemptsExhausted))
}

func TestOtpService_Verify_ExhaustedChallengeRejectsCorrectCode(t *testing.T) {
	fx := createTestOtpService(t)
	ctx := context.Background()
	email := "student@iiitl.ac.in"
	challenge := testChallenge(email, "042187")
	challenge.Attempts = defaultOtpMaxAttempts

	fx.otpRepo.EXPECT().FindLatestByEmail(mock.Anything, email).Return(challenge, nil)

	_, err := fx.service.Verify(ctx, &usecase.VerifyOtpInput{Email: email, Code: "042187"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOtpAttemptsExhausted))
}

func TestGenerateOtpCode_ShapeAndPadding(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for range 64 {
		code, err := generateOtpCode()
		require.NoError(t, err)
		assert.True(t, pattern.MatchString(code), "code %q must be exactly six digits", code)
	}
}
