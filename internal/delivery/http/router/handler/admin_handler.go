package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"accountd/internal/delivery/http/middleware"
	"accountd/internal/delivery/http/response"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administrative endpoints.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

type setRoleRequest struct {
	Action string `json:"action" validate:"required,oneof=promote demote"`
}

// ListAccounts returns one page of accounts.
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.adminUC.ListAccounts(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*accountView, 0, len(output.Accounts))
	for _, account := range output.Accounts {
		views = append(views, toAccountView(account))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accounts":   views,
		"pagination": output.Pagination,
	}, "")
}

// SetRole grants or revokes the admin role on a target account.
func (h *AdminHandler) SetRole(c echo.Context) error {
	actorID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid account ID")
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	account, err := h.adminUC.SetAdminRole(c.Request().Context(), &usecase.SetAdminRoleInput{
		ActorID:  actorID,
		TargetID: targetID,
		Action:   usecase.RoleAction(req.Action),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Role updated")
}
