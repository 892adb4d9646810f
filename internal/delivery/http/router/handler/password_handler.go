package handler

import (
	"log/slog"
	"net/http"

	"accountd/internal/delivery/http/middleware"
	"accountd/internal/delivery/http/response"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PasswordHandler holds dependencies for the reset-token lifecycle and the
// authenticated password set/change endpoints.
type PasswordHandler struct {
	resetUC      usecase.PasswordResetUsecase
	credentialUC usecase.CredentialUsecase
	logger       *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler, injected by Fx.
func NewPasswordHandler(
	resetUC usecase.PasswordResetUsecase,
	credentialUC usecase.CredentialUsecase,
	logger *slog.Logger,
) *PasswordHandler {
	return &PasswordHandler{
		resetUC:      resetUC,
		credentialUC: credentialUC,
		logger:       logger,
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type setPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Forgot handles the reset-link request. The response is identical whether
// or not the email exists.
func (h *PasswordHandler) Forgot(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset request")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	err := h.resetUC.RequestReset(c.Request().Context(), &usecase.RequestResetInput{
		Email:       req.Email,
		RequesterIP: c.RealIP(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil,
		"If an account exists for this email, a reset link has been sent")
}

// ValidateToken reports whether a reset link is still usable.
func (h *PasswordHandler) ValidateToken(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "token query parameter is required")
	}

	valid, err := h.resetUC.ValidateToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"valid": valid}, "")
}

// Reset completes a password reset with the token from the mail link.
func (h *PasswordHandler) Reset(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	err := h.resetUC.ResolveReset(c.Request().Context(), &usecase.ResolveResetInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password has been reset")
}

// SetInitial establishes the first password on a federated account.
// Requires authentication.
func (h *PasswordHandler) SetInitial(c echo.Context) error {
	accountID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req setPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	err := h.credentialUC.SetInitialPassword(c.Request().Context(), &usecase.SetInitialPasswordInput{
		AccountID: accountID,
		Password:  req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password has been set")
}

// Change rotates the password of the authenticated account.
func (h *PasswordHandler) Change(c echo.Context) error {
	accountID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	err := h.credentialUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		AccountID:       accountID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password has been changed")
}
