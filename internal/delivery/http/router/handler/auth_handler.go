package handler

import (
	"log/slog"
	"net/http"

	"accountd/internal/delivery/http/response"
	"accountd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the unauthenticated auth endpoints:
// verification codes, registration and both sign-in flows.
type AuthHandler struct {
	otpUC          usecase.OtpUsecase
	registrationUC usecase.RegistrationUsecase
	credentialUC   usecase.CredentialUsecase
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	otpUC usecase.OtpUsecase,
	registrationUC usecase.RegistrationUsecase,
	credentialUC usecase.CredentialUsecase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		otpUC:          otpUC,
		registrationUC: registrationUC,
		credentialUC:   credentialUC,
		logger:         logger,
	}
}

type sendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Code     string `json:"code" validate:"required,len=6,numeric"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// SendOtp handles the verification-code issue request. The code itself
// travels only by mail, never in the response.
func (h *AuthHandler) SendOtp(c echo.Context) error {
	var req sendOtpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification request")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	challenge, err := h.otpUC.Issue(c.Request().Context(), &usecase.IssueOtpInput{
		Email:       req.Email,
		RequesterIP: c.RealIP(),
		UserAgent:   c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"email":      challenge.Email,
		"expires_at": challenge.ExpiresAt,
	}, "Verification code sent")
}

// VerifyOtp handles the code check request.
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req verifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification request")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	challenge, err := h.otpUC.Verify(c.Request().Context(), &usecase.VerifyOtpInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"email":    challenge.Email,
		"verified": challenge.Verified,
	}, "Code verified")
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.registrationUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Code:     req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountView(output.Account), "Account registered successfully")
}

// Login handles the password sign-in request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.credentialUC.Authenticate(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": output.AccessToken,
		"account":      toAccountView(output.Account),
	}, "Login successful")
}

// GoogleSignIn handles the federated sign-in request with a Google ID token.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.credentialUC.GoogleSignIn(c.Request().Context(), &usecase.GoogleSignInInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": output.AccessToken,
		"account":      toAccountView(output.Account),
	}, "Google sign-in successful")
}
