// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler        *handler.MenuHandler
	CartHandler        *handler.CartHandler
	OrderHandler       *handler.OrderHandler
	FeedbackHandler    *handler.FeedbackHandler
	ProfileHandler     *handler.ProfileHandler
	SessionHandler     *handler.SessionHandler
	AdminHandler       *handler.AdminHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	menuHandler        *handler.MenuHandler
	cartHandler        *handler.CartHandler
	orderHandler       *handler.OrderHandler
	feedbackHandler    *handler.FeedbackHandler
	profileHandler     *handler.ProfileHandler
	sessionHandler     *handler.SessionHandler
	adminHandler       *handler.AdminHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menuHandler:        params.MenuHandler,
		cartHandler:        params.CartHandler,
		orderHandler:       params.OrderHandler,
		feedbackHandler:    params.FeedbackHandler,
		profileHandler:     params.ProfileHandler,
		sessionHandler:     params.SessionHandler,
		adminHandler:       params.AdminHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Menu browsing is open to any identified caller
	menuGroup := e.Group("/menu")
	menuGroup.Use(r.identityMiddleware.RequireUser)
	{
		menuGroup.GET("/categories", r.menuHandler.ListCategories)
		menuGroup.GET("/categories/:id/dishes", r.menuHandler.ListDishes)
		menuGroup.GET("/dishes", r.menuHandler.ListAllDishes)
		menuGroup.GET("/dishes/:id", r.menuHandler.GetDish)
	}

	// Registration and profile
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.identityMiddleware.RequireUser)
	{
		profileGroup.POST("/register", r.profileHandler.Register)
		profileGroup.GET("", r.profileHandler.Get)
	}

	// Basket
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.identityMiddleware.RequireUser)
	{
		cartGroup.GET("", r.cartHandler.View)
		cartGroup.POST("/items", r.cartHandler.Add)
		cartGroup.PATCH("/items", r.cartHandler.ChangeQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveLine)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Orders
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.identityMiddleware.RequireUser)
	{
		orderGroup.POST("/checkout", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.GET("/:id/pickup-code", r.orderHandler.PickupCode)
	}

	// Feedback
	feedbackGroup := e.Group("/feedback")
	feedbackGroup.Use(r.identityMiddleware.RequireUser)
	{
		feedbackGroup.POST("", r.feedbackHandler.Add)
		feedbackGroup.GET("", r.feedbackHandler.ListMine)
	}

	// Conversation sessions
	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.identityMiddleware.RequireUser)
	{
		sessionGroup.POST("", r.sessionHandler.Begin)
		sessionGroup.PATCH("", r.sessionHandler.Advance)
		sessionGroup.GET("", r.sessionHandler.Get)
		sessionGroup.DELETE("", r.sessionHandler.Abandon)
	}

	// Operator endpoints require a configured admin account
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.identityMiddleware.RequireUser)
	adminGroup.Use(r.identityMiddleware.RequireAdmin)
	{
		adminGroup.POST("/categories", r.adminHandler.AddCategory)
		adminGroup.DELETE("/categories/:id", r.adminHandler.DeleteCategory)
		adminGroup.POST("/dishes", r.adminHandler.AddDish)
		adminGroup.PATCH("/dishes/:id", r.adminHandler.UpdateDish)
		adminGroup.DELETE("/dishes/:id", r.adminHandler.DeleteDish)
		adminGroup.GET("/orders/:id", r.adminHandler.GetOrder)
		adminGroup.PATCH("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.GET("/stats", r.adminHandler.Stats)
		adminGroup.GET("/feedback", r.adminHandler.ListFeedback)
	}
}
