package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/http/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler exposes the cart ledger
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// GetCart returns the current cart items and totals
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartUC.Snapshot(), "Cart")
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	h.cartUC.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, h.cartUC.Snapshot(), "Cart cleared")
}
