// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"staffportal/internal/delivery/api/middleware"
	"staffportal/internal/delivery/api/router/handler"
	"staffportal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler     *handler.NotificationHandler
	StreamHandler           *handler.StreamHandler
	DeviceHandler           *handler.DeviceHandler
	PushRegistrationHandler *handler.PushRegistrationHandler
	AdminHandler            *handler.AdminHandler
	AuthMiddleware          *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler     *handler.NotificationHandler
	streamHandler           *handler.StreamHandler
	deviceHandler           *handler.DeviceHandler
	pushRegistrationHandler *handler.PushRegistrationHandler
	adminHandler            *handler.AdminHandler
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler:     params.NotificationHandler,
		streamHandler:           params.StreamHandler,
		deviceHandler:           params.DeviceHandler,
		pushRegistrationHandler: params.PushRegistrationHandler,
		adminHandler:            params.AdminHandler,
		authMiddleware:          params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Notification inbox of the caller
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.GET("/stream", r.streamHandler.Stream)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.POST("/:id/unread", r.notificationHandler.MarkUnread)
		notificationsGroup.POST("/:id/archive", r.notificationHandler.Archive)
		notificationsGroup.POST("/:id/click", r.notificationHandler.RecordClick)
		notificationsGroup.DELETE("/:id", r.notificationHandler.Delete)
	}

	// Push registration routes
	pushGroup := apiV1.Group("/push-registrations")
	{
		pushGroup.POST("", r.pushRegistrationHandler.Register)
		pushGroup.DELETE("/:token", r.pushRegistrationHandler.Unregister)
	}

	// Device routes for any staff member
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.GET("/mine", r.deviceHandler.MyDevices)
		devicesGroup.GET("/:id/history", r.deviceHandler.GetHistory)
	}

	// Feedback is shared between admins and department leads
	feedbackGroup := apiV1.Group("/admin/feedback")
	feedbackGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleLead))
	{
		feedbackGroup.GET("", r.adminHandler.ListFeedback)
		feedbackGroup.PUT("/:id/status", r.adminHandler.UpdateFeedbackStatus)
	}

	docsGroup := apiV1.Group("/admin/documentation")
	docsGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin, entity.RoleLead))
	{
		docsGroup.GET("", r.adminHandler.ListDocumentation)
		docsGroup.GET("/:id", r.adminHandler.GetDocumentation)
	}

	// Admin routes
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin))
	{
		adminGroup.GET("/devices", r.deviceHandler.ListDevices)
		adminGroup.POST("/devices", r.deviceHandler.CreateDevice)
		adminGroup.PUT("/devices/:id", r.deviceHandler.UpdateDevice)
		adminGroup.DELETE("/devices/:id", r.deviceHandler.DeleteDevice)
		adminGroup.POST("/devices/:id/assign", r.deviceHandler.AssignDevice)
		adminGroup.GET("/devices/:id/label", r.deviceHandler.DeviceLabel)

		adminGroup.GET("/staff", r.adminHandler.ListStaff)
		adminGroup.POST("/notifications", r.notificationHandler.Announce)
		adminGroup.GET("/audit-logs", r.adminHandler.ListAuditLogs)

		adminGroup.GET("/asset-issues", r.adminHandler.ListAssetIssues)
		adminGroup.POST("/asset-issues/:id/toggle", r.adminHandler.ToggleAssetIssue)
		adminGroup.DELETE("/asset-issues/:id", r.adminHandler.DeleteAssetIssue)
	}
}
