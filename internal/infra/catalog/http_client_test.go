package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestClient(t *testing.T, handler http.Handler) service.CatalogClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Catalog.BaseURL = server.URL
	cfg.Catalog.Timeout = 5 * time.Second

	return NewHTTPClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHTTPClient_Lookup_Found(t *testing.T) {
	var gotPath string
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "prd_451",
			"code":  "451",
			"name":  "おーいお茶",
			"price": 150,
		})
	}))

	product, err := client.Lookup(context.Background(), "451")
	require.NoError(t, err)
	assert.Equal(t, "/products/451", gotPath)
	assert.Equal(t, "prd_451", product.ID)
	assert.Equal(t, "451", product.Code)
	assert.Equal(t, "おーいお茶", product.Name)
	assert.Equal(t, int64(150), product.UnitPrice)
}

func TestHTTPClient_Lookup_NotFound(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.Lookup(context.Background(), "999")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestHTTPClient_Lookup_ServerError(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.Lookup(context.Background(), "451")
	assert.ErrorIs(t, err, domainerrors.ErrTransportFailed)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPClient_Lookup_ConnectionRefused(t *testing.T) {
	cfg := &config.Config{}
	cfg.Catalog.BaseURL = "http://127.0.0.1:1"
	cfg.Catalog.Timeout = time.Second
	client := NewHTTPClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Lookup(context.Background(), "451")
	assert.ErrorIs(t, err, domainerrors.ErrTransportFailed)
}

func TestHTTPClient_Lookup_PropagatesRequestID(t *testing.T) {
	var gotRequestID string
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		w.WriteHeader(http.StatusNotFound)
	}))

	ctx := deliverycontext.WithRequestID(context.Background(), "req-abc")
	_, _ = client.Lookup(ctx, "451")
	assert.Equal(t, "req-abc", gotRequestID)
}

func TestHTTPClient_Register_Created(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/products", r.URL.Path)

		var payload registerPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "999", payload.Code)
		assert.Equal(t, "新商品", payload.Name)
		assert.Equal(t, int64(500), payload.Price)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "prd_999",
			"code":  payload.Code,
			"name":  payload.Name,
			"price": payload.Price,
		})
	}))

	product, err := client.Register(context.Background(), "999", "新商品", 500)
	require.NoError(t, err)
	assert.Equal(t, "prd_999", product.ID)
	assert.Equal(t, int64(500), product.UnitPrice)
}

func TestHTTPClient_Register_UsesRequestScopedLogger(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	var logs bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&logs, nil)).With(slog.String("request_id", "req-xyz"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	_, _ = client.Register(ctx, "999", "新商品", 500)

	assert.Contains(t, logs.String(), "registering product in catalog")
	assert.Contains(t, logs.String(), "req-xyz")
}

func TestHTTPClient_Register_Conflict(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	_, err := client.Register(context.Background(), "999", "新商品", 500)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationConflict)
}

func TestHTTPClient_Register_ServerError(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))

	_, err := client.Register(context.Background(), "999", "新商品", 500)
	assert.ErrorIs(t, err, domainerrors.ErrTransportFailed)
}
