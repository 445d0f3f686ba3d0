// Package catalog implements the CatalogClient against the remote
// catalog service's HTTP API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
)

type httpClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// productPayload is the catalog service's wire representation.
type productPayload struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// registerPayload is the catalog registration request body.
type registerPayload struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// NewHTTPClient creates a CatalogClient for the configured catalog
// service. The per-request deadline comes from the caller's context;
// the client timeout is only a safety net.
func NewHTTPClient(cfg *config.Config, logger *slog.Logger) service.CatalogClient {
	return &httpClient{
		baseURL: strings.TrimRight(cfg.Catalog.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
		logger: logger,
	}
}

// Lookup resolves a product code. A 404 from the catalog is the
// explicit not-found signal; everything else non-2xx is a transport
// failure.
func (c *httpClient) Lookup(ctx context.Context, code string) (*entity.Product, error) {
	endpoint := fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c.setCommonHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrTransportFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return decodeProduct(resp.Body)
	case resp.StatusCode == http.StatusNotFound:
		return nil, domainerrors.ErrProductNotFound
	default:
		return nil, transportError("catalog lookup", resp)
	}
}

// Register creates a catalog record for an unknown code. A 409 means
// the code was registered concurrently.
func (c *httpClient) Register(ctx context.Context, code, name string, unitPrice int64) (*entity.Product, error) {
	body, err := json.Marshal(registerPayload{
		Code:  code,
		Name:  name,
		Price: unitPrice,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := c.baseURL + "/products"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(ctx, req)

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	logger.Info("registering product in catalog",
		slog.String("code", code),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrTransportFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		return decodeProduct(resp.Body)
	case resp.StatusCode == http.StatusConflict:
		return nil, domainerrors.ErrRegistrationConflict
	default:
		return nil, transportError("catalog registration", resp)
	}
}

func (c *httpClient) setCommonHeaders(ctx context.Context, req *http.Request) {
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
}

func decodeProduct(r io.Reader) (*entity.Product, error) {
	var payload productPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, domainerrors.ErrTransportFailed.WithDetails(errors.Wrap(err, "decode product").Error())
	}

	return &entity.Product{
		ID:        payload.ID,
		Code:      payload.Code,
		Name:      payload.Name,
		UnitPrice: payload.Price,
	}, nil
}

func transportError(op string, resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	detail := fmt.Sprintf("%s returned status %d", op, resp.StatusCode)
	if len(msg) > 0 {
		detail = fmt.Sprintf("%s: %s", detail, strings.TrimSpace(string(msg)))
	}

	return domainerrors.ErrTransportFailed.WithDetails(detail)
}
