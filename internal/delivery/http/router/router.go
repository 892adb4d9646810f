// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accountd/internal/delivery/http/middleware"
	"accountd/internal/delivery/http/router/handler"
	"accountd/internal/domain/entity"
	"accountd/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PasswordHandler *handler.PasswordHandler
	AccountHandler  *handler.AccountHandler
	AdminHandler    *handler.AdminHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	RequestMiddleware   *middleware.RequestContextMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	passwordHandler *handler.PasswordHandler
	accountHandler  *handler.AccountHandler
	adminHandler    *handler.AdminHandler

	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	requestMiddleware   *middleware.RequestContextMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		passwordHandler:     params.PasswordHandler,
		accountHandler:      params.AccountHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		requestMiddleware:   params.RequestMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Unauthenticated auth routes, each behind its own rate-limit window
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/otp/send", r.authHandler.SendOtp,
			r.rateLimitMiddleware.Limit(service.OpOtpSend))
		authGroup.POST("/otp/verify", r.authHandler.VerifyOtp,
			r.rateLimitMiddleware.Limit(service.OpOtpVerify))
		authGroup.POST("/register", r.authHandler.Register,
			r.rateLimitMiddleware.Limit(service.OpRegister))
		authGroup.POST("/login", r.authHandler.Login,
			r.rateLimitMiddleware.Limit(service.OpSignIn))
		authGroup.POST("/google", r.authHandler.GoogleSignIn,
			r.rateLimitMiddleware.Limit(service.OpSignIn))
		authGroup.POST("/password/forgot", r.passwordHandler.Forgot,
			r.rateLimitMiddleware.Limit(service.OpResetRequest))
		authGroup.GET("/password/validate", r.passwordHandler.ValidateToken)
		authGroup.POST("/password/reset", r.passwordHandler.Reset,
			r.rateLimitMiddleware.Limit(service.OpPasswordChange))
	}

	// Account routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/profile", r.accountHandler.GetProfile)
		accountGroup.POST("/avatar", r.accountHandler.UploadAvatar)
		accountGroup.POST("/password", r.passwordHandler.SetInitial,
			r.rateLimitMiddleware.Limit(service.OpPasswordChange))
		accountGroup.PUT("/password", r.passwordHandler.Change,
			r.rateLimitMiddleware.Limit(service.OpPasswordChange))
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/accounts", r.adminHandler.ListAccounts)
		adminGroup.PUT("/accounts/:id/role", r.adminHandler.SetRole)
	}
}
