// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pos/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	ScanHandler     *handler.ScanHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	scanHandler     *handler.ScanHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		scanHandler:     params.ScanHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Resolution session routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/code", r.sessionHandler.SubmitCode)
		sessionGroup.POST("/register", r.sessionHandler.Register)
		sessionGroup.POST("/add", r.sessionHandler.AddToCart)
		sessionGroup.POST("/abandon", r.sessionHandler.Abandon)
		sessionGroup.POST("/scan/start", r.sessionHandler.StartScan)
		sessionGroup.POST("/scan/stop", r.sessionHandler.StopScan)
	}

	// Cart ledger routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/clear", r.cartHandler.ClearCart)
	}

	// Checkout route
	e.POST("/checkout", r.checkoutHandler.Submit)

	// Decoded-code push endpoint for the barcode decoder
	e.POST("/scan/events", r.scanHandler.HandleScanEvent)
}
