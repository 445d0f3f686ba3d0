// Package handler contains the operator API handlers.
package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/http/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	ResolutionUC usecase.ResolutionUsecase
	Logger       *slog.Logger
}

// SessionHandler exposes the resolution state machine of the terminal
// session: code submission, the registration fallback, add-to-cart and
// scan control.
type SessionHandler struct {
	resolutionUC usecase.ResolutionUsecase
	logger       *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		resolutionUC: params.ResolutionUC,
		logger:       params.Logger,
	}
}

// SubmitCodeRequest represents the request body for submitting a product code
type SubmitCodeRequest struct {
	Code string `json:"code"`
}

// RegisterProductRequest represents the request body for the
// registration fallback of a not-found code
type RegisterProductRequest struct {
	Name      string `json:"name" validate:"required"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
}

// AddToCartRequest represents the request body for adding the resolved
// product to the cart
type AddToCartRequest struct {
	Quantity int64 `json:"quantity"`
}

// SubmitCode handles manual entry of a product code
func (h *SessionHandler) SubmitCode(c echo.Context) error {
	var req SubmitCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid code input")
	}

	attempt, err := h.resolutionUC.SubmitCode(c.Request().Context(), req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attempt, "Code resolved")
}

// Register handles inline registration of a not-found code
func (h *SessionHandler) Register(c echo.Context) error {
	var req RegisterProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	attempt, err := h.resolutionUC.RegisterAndResolve(c.Request().Context(), req.Name, req.UnitPrice)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attempt, "Product registered")
}

// AddToCart merges the resolved product into the cart
func (h *SessionHandler) AddToCart(c echo.Context) error {
	req := AddToCartRequest{Quantity: 1}
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.resolutionUC.AddToCart(c.Request().Context(), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Product added to cart")
}

// Abandon discards the current resolution attempt
func (h *SessionHandler) Abandon(c echo.Context) error {
	h.resolutionUC.Abandon(c.Request().Context())

	return response.Success(c, http.StatusOK, h.resolutionUC.Current(), "Attempt abandoned")
}

// GetSession returns the current resolution attempt and scan state
func (h *SessionHandler) GetSession(c echo.Context) error {
	data := map[string]any{
		"attempt":  h.resolutionUC.Current(),
		"scanning": h.resolutionUC.Scanning(),
	}

	return response.Success(c, http.StatusOK, data, "Session state")
}

// StartScan acquires the scan source for a single-shot scan
func (h *SessionHandler) StartScan(c echo.Context) error {
	if err := h.resolutionUC.StartScan(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"scanning": true}, "Scan started")
}

// StopScan releases the scan source
func (h *SessionHandler) StopScan(c echo.Context) error {
	h.resolutionUC.StopScan(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]bool{"scanning": false}, "Scan stopped")
}
