// Package order implements the OrderGateway against the order service's
// HTTP checkout API.
package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
)

type httpGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// confirmationPayload is the order service's response for a confirmed
// checkout. Its totals are authoritative.
type confirmationPayload struct {
	OrderID    string `json:"order_id"`
	GrandTotal int64  `json:"grand_total"`
	TaxAmount  int64  `json:"tax_amount"`
}

// rejectionPayload carries the reason a checkout was refused.
type rejectionPayload struct {
	Reason string `json:"reason"`
}

// NewHTTPGateway creates an OrderGateway for the configured order
// service.
func NewHTTPGateway(cfg *config.Config, logger *slog.Logger) service.OrderGateway {
	return &httpGateway{
		baseURL: strings.TrimRight(cfg.Checkout.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Checkout.Timeout,
		},
		logger: logger,
	}
}

// SubmitOrder posts the order. 422 is a rejection with a reason, every
// other non-2xx outcome and any connectivity error is a transport
// failure. Both leave the caller free to retry.
func (g *httpGateway) SubmitOrder(ctx context.Context, order *entity.OrderRequest) (*entity.OrderConfirmation, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := g.baseURL + "/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Idempotency-Key", order.IdempotencyKey)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, g.logger)
	logger.Info("submitting order",
		slog.String("idempotency_key", order.IdempotencyKey),
		slog.Int("item_count", len(order.Items)),
	)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrTransportFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		var payload confirmationPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, domainerrors.ErrTransportFailed.WithDetails(errors.Wrap(err, "decode confirmation").Error())
		}

		return &entity.OrderConfirmation{
			OrderID:    payload.OrderID,
			GrandTotal: payload.GrandTotal,
			TaxAmount:  payload.TaxAmount,
		}, nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, domainerrors.ErrOrderRejected.WithDetails(rejectionReason(resp.Body))
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		detail := fmt.Sprintf("order service returned status %d", resp.StatusCode)
		if len(msg) > 0 {
			detail = fmt.Sprintf("%s: %s", detail, strings.TrimSpace(string(msg)))
		}

		return nil, domainerrors.ErrTransportFailed.WithDetails(detail)
	}
}

func rejectionReason(r io.Reader) string {
	var payload rejectionPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Reason == "" {
		return "order rejected by server"
	}

	return payload.Reason
}
