package handler

import (
	"log/slog"
	"net/http"
	"path"

	"accountd/internal/delivery/http/middleware"
	"accountd/internal/delivery/http/response"
	"accountd/internal/domain/service"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const maxAvatarSize = 2 << 20 // 2 MiB

// AccountHandler holds dependencies for the authenticated account endpoints.
type AccountHandler struct {
	credentialUC usecase.CredentialUsecase
	storage      service.ObjectStorage
	logger       *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(
	credentialUC usecase.CredentialUsecase,
	storage service.ObjectStorage,
	logger *slog.Logger,
) *AccountHandler {
	return &AccountHandler{
		credentialUC: credentialUC,
		storage:      storage,
		logger:       logger,
	}
}

// GetProfile returns the account behind the bearer token.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.credentialUC.Profile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "")
}

// UploadAvatar stores a profile picture and returns its public URL.
func (h *AccountHandler) UploadAvatar(c echo.Context) error {
	accountID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "avatar file is required")
	}
	if fileHeader.Size > maxAvatarSize {
		return response.BadRequest(c, "INVALID_INPUT", "avatar file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key := "avatars/" + accountID.String() + path.Ext(fileHeader.Filename)

	stored, err := h.storage.Upload(c.Request().Context(), key, contentType, file)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Debug("Avatar uploaded", slog.String("key", stored.Key))

	return response.Success(c, http.StatusOK, map[string]string{"url": stored.URL}, "Avatar uploaded")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
