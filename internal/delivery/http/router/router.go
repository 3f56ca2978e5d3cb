// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	OfferHandler   *handler.OfferHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	FileHandler    *handler.FileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	offerHandler   *handler.OfferHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	fileHandler    *handler.FileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		offerHandler:   params.OfferHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		fileHandler:    params.FileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account routes, open to anonymous callers
	api.POST("/registration", r.authHandler.Register)
	api.POST("/login", r.authHandler.Login)

	// The offer listing is the only browsable resource without a token
	api.GET("/offers", r.offerHandler.List)

	// Everything below requires a valid access token
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/profile/:id", r.profileHandler.Get)
		authed.PATCH("/profile/:id", r.profileHandler.Update)
		authed.GET("/profiles/business", r.profileHandler.ListBusiness)
		authed.GET("/profiles/customer", r.profileHandler.ListCustomer)

		authed.POST("/offers", r.offerHandler.Create, r.authMiddleware.RequireRole(entity.RoleBusiness))
		authed.GET("/offers/:id", r.offerHandler.Get)
		authed.PATCH("/offers/:id", r.offerHandler.Update)
		authed.DELETE("/offers/:id", r.offerHandler.Delete)
		authed.GET("/offerdetails/:id", r.offerHandler.GetDetail)

		authed.POST("/orders", r.orderHandler.Create, r.authMiddleware.RequireRole(entity.RoleCustomer))
		authed.GET("/orders", r.orderHandler.List)
		authed.PATCH("/orders/:id", r.orderHandler.UpdateStatus)
		authed.DELETE("/orders/:id", r.orderHandler.Delete, r.authMiddleware.RequireStaff)
		authed.GET("/orders/count/:business_user_id", r.orderHandler.CountInProgress)
		authed.GET("/orders/count-completed/:business_user_id", r.orderHandler.CountCompleted)

		authed.GET("/reviews", r.reviewHandler.List)
		authed.POST("/reviews", r.reviewHandler.Create, r.authMiddleware.RequireRole(entity.RoleCustomer))

		authed.POST("/files", r.fileHandler.Upload)
	}
}
