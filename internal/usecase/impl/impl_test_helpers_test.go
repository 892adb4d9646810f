package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"accountd/internal/domain/entity"
	"accountd/internal/domain/repository"
	mockRepo "accountd/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// testLogger discards everything; the services log on most paths and the
// output would drown the test run.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTx wires the transaction manager mock so Execute runs the callback
// against the given factory and propagates its error, mirroring what the
// real manager does minus the database.
func stubTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
}

func testAccount(t *testing.T, email string) *entity.Account {
	t.Helper()
	hash := "$2a$10$stored-hash"

	return &entity.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test Account",
		PasswordHash: &hash,
		PasswordSet:  true,
		Roles:        entity.Roles{entity.RoleUser},
		CreatedAt:    time.Now().Add(-time.Hour),
	}
}

func testChallenge(email, code string) *entity.OtpChallenge {
	return &entity.OtpChallenge{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
}
