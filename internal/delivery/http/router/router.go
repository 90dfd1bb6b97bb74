// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	StatsHandler    *handler.StatsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	statsHandler    *handler.StatsHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		statsHandler:    params.StatsHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public catalog browsing: anyone can read categories and products.
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/categories", r.categoryHandler.List)
		catalogGroup.GET("/categories/:id", r.categoryHandler.Get)
		catalogGroup.GET("/products", r.productHandler.List)
		catalogGroup.GET("/products/:id", r.productHandler.Get)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PATCH("/profile", r.userHandler.UpdateProfile)
	}

	// Order routes require the customer role
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	orderGroup.Use(r.authMiddleware.RequireRole(entity.RoleUser))
	{
		orderGroup.POST("", r.orderHandler.Place)
		orderGroup.GET("/:id", r.orderHandler.Get)
	}

	// Category creation is open to merchants and admins alike
	categoryGroup := e.Group("/categories")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	categoryGroup.Use(r.authMiddleware.RequireAnyRole(entity.RoleMerchant, entity.RoleAdmin))
	{
		categoryGroup.POST("", r.categoryHandler.Create)
	}

	// Merchant routes: product management scoped to the caller's own products
	merchantGroup := e.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireRole(entity.RoleMerchant))
	{
		merchantGroup.POST("/products", r.productHandler.Create)
		merchantGroup.PUT("/products/:id", r.productHandler.Update)
		merchantGroup.DELETE("/products/:id", r.productHandler.Delete)
	}

	// Admin routes: category lifecycle, role assignment and reporting
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PUT("/categories/:id", r.categoryHandler.Update)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.Delete)
		adminGroup.PUT("/users/:id/merchant-status", r.userHandler.SetMerchantStatus)
		adminGroup.GET("/stats/top-products/:from/:to/:limit", r.statsHandler.TopProducts)
	}
}
