package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/http/response"
	"pos/internal/infra/scanner"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	Source *scanner.WebhookSource
	Logger *slog.Logger
}

// ScanHandler receives decoded codes pushed by the black-box barcode
// decoder. Codes arriving while no scan session is active are dropped.
type ScanHandler struct {
	source *scanner.WebhookSource
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		source: params.Source,
		logger: params.Logger,
	}
}

// ScanEventRequest represents one decoded code pushed by the decoder
type ScanEventRequest struct {
	Code string `json:"code" validate:"required"`
}

// HandleScanEvent accepts a decoded-code event
func (h *ScanHandler) HandleScanEvent(c echo.Context) error {
	var req ScanEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan event")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	delivered := h.source.Emit(req.Code)
	if !delivered {
		h.logger.Debug("scan event dropped, no active session",
			slog.String("code", req.Code),
		)
	}

	return response.Success(c, http.StatusAccepted, map[string]bool{"delivered": delivered}, "Scan event accepted")
}
