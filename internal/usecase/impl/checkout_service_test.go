package impl

import (
	"context"
	"testing"

	"pos/config"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	mockService "pos/internal/mocks/service"
	"pos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	gateway   *mockService.MockOrderGateway
	publisher *mockService.MockEventPublisher
	receipts  *mockService.MockReceiptEncoder
	cart      usecase.CartUsecase
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	gateway := mockService.NewMockOrderGateway(t)
	publisher := mockService.NewMockEventPublisher(t)
	receipts := mockService.NewMockReceiptEncoder(t)
	cart := NewCartService(discardLogger())
	checkout := NewCheckoutService(&config.Config{}, gateway, cart, publisher, receipts, discardLogger())

	return checkoutServiceFixtures{
		service:   checkout,
		gateway:   gateway,
		publisher: publisher,
		receipts:  receipts,
		cart:      cart,
	}
}

func seedCart(t *testing.T, cart usecase.CartUsecase) {
	t.Helper()

	_, err := cart.MergeOrAdd(context.Background(), greenTea(), 2)
	require.NoError(t, err)
}

func TestCheckoutService_Submit_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.Submit(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_Submit_Confirmed(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCart(t, fx.cart)

	confirmation := &entity.OrderConfirmation{OrderID: "ord_123", GrandTotal: 330, TaxAmount: 30}
	fx.gateway.EXPECT().
		SubmitOrder(mock.Anything, mock.AnythingOfType("*entity.OrderRequest")).
		RunAndReturn(func(_ context.Context, req *entity.OrderRequest) (*entity.OrderConfirmation, error) {
			assert.NotEmpty(t, req.IdempotencyKey)
			assert.Equal(t, int64(330), req.ClientComputedTotal)
			require.Len(t, req.Items, 1)
			assert.Equal(t, "451", req.Items[0].ProductCode)
			assert.Equal(t, int64(2), req.Items[0].Quantity)

			return confirmation, nil
		})

	fx.publisher.EXPECT().
		PublishOrderConfirmed(mock.Anything, mock.AnythingOfType("*service.OrderConfirmedEvent")).
		RunAndReturn(func(_ context.Context, event *service.OrderConfirmedEvent) error {
			assert.Equal(t, "ord_123", event.OrderID)
			assert.Equal(t, 1, event.ItemCount)

			return nil
		})

	fx.receipts.EXPECT().
		EncodeReceipt("ord_123", int64(330)).
		Return([]byte("png-bytes"), nil)

	result, err := fx.service.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ord_123", result.OrderID)
	assert.Equal(t, int64(330), result.GrandTotal)
	assert.Equal(t, int64(30), result.TaxAmount)
	assert.Equal(t, []byte("png-bytes"), result.ReceiptQR)

	// Confirmation is the only thing that clears the cart.
	assert.Empty(t, fx.cart.Snapshot().Items)
}

func TestCheckoutService_Submit_TransportFailurePreservesCartAndKey(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCart(t, fx.cart)

	var keys []string
	fx.gateway.EXPECT().
		SubmitOrder(mock.Anything, mock.AnythingOfType("*entity.OrderRequest")).
		RunAndReturn(func(_ context.Context, req *entity.OrderRequest) (*entity.OrderConfirmation, error) {
			keys = append(keys, req.IdempotencyKey)

			return nil, domainerrors.ErrTransportFailed
		}).
		Once()

	_, err := fx.service.Submit(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrTransportFailed)
	assert.Len(t, fx.cart.Snapshot().Items, 1)

	confirmation := &entity.OrderConfirmation{OrderID: "ord_456", GrandTotal: 330, TaxAmount: 30}
	fx.gateway.EXPECT().
		SubmitOrder(mock.Anything, mock.AnythingOfType("*entity.OrderRequest")).
		RunAndReturn(func(_ context.Context, req *entity.OrderRequest) (*entity.OrderConfirmation, error) {
			keys = append(keys, req.IdempotencyKey)

			return confirmation, nil
		}).
		Once()
	fx.publisher.EXPECT().
		PublishOrderConfirmed(mock.Anything, mock.Anything).
		Return(nil)
	fx.receipts.EXPECT().
		EncodeReceipt("ord_456", int64(330)).
		Return([]byte("png"), nil)

	_, err = fx.service.Submit(ctx)
	require.NoError(t, err)

	// The retry reuses the minted key so the order service can
	// deduplicate, and confirmation resets it for the next cart.
	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])

	seedCart(t, fx.cart)
	fx.gateway.EXPECT().
		SubmitOrder(mock.Anything, mock.AnythingOfType("*entity.OrderRequest")).
		RunAndReturn(func(_ context.Context, req *entity.OrderRequest) (*entity.OrderConfirmation, error) {
			keys = append(keys, req.IdempotencyKey)

			return nil, domainerrors.ErrTransportFailed
		}).
		Once()

	_, err = fx.service.Submit(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrTransportFailed)
	require.Len(t, keys, 3)
	assert.NotEqual(t, keys[0], keys[2])
}

func TestCheckoutService_Submit_RejectionPreservesCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	seedCart(t, fx.cart)

	fx.gateway.EXPECT().
		SubmitOrder(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrOrderRejected.WithDetails("price changed"))

	_, err := fx.service.Submit(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrOrderRejected)
	assert.Len(t, fx.cart.Snapshot().Items, 1)
}

func TestCheckoutService_Submit_DoubleSubmitGuard(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := context.Background()
	seedCart(t, fx.cart)

	submitStarted := make(chan struct{})
	releaseSubmit := make(chan struct{})

	confirmation := &entity.OrderConfirmation{OrderID: "ord_789", GrandTotal: 330, TaxAmount: 30}
	fx.gateway.EXPECT().
		SubmitOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.OrderRequest) (*entity.OrderConfirmation, error) {
			close(submitStarted)
			<-releaseSubmit

			return confirmation, nil
		}).
		Once()
	fx.publisher.EXPECT().
		PublishOrderConfirmed(mock.Anything, mock.Anything).
		Return(nil)
	fx.receipts.EXPECT().
		EncodeReceipt("ord_789", int64(330)).
		Return([]byte("png"), nil)

	firstErr := make(chan error, 1)
	go func() {
		_, err := fx.service.Submit(ctx)
		firstErr <- err
	}()

	<-submitStarted

	// A second press while the first submission is in flight must not
	// produce a second order.
	_, err := fx.service.Submit(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)

	close(releaseSubmit)
	require.NoError(t, <-firstErr)
	assert.Empty(t, fx.cart.Snapshot().Items)
}

func TestCheckoutService_Submit_PublishFailureTolerated(t *testing.T) {
	fx := createTestCheckoutService(t)
	seedCart(t, fx.cart)

	confirmation := &entity.OrderConfirmation{OrderID: "ord_001", GrandTotal: 330, TaxAmount: 30}
	fx.gateway.EXPECT().
		SubmitOrder(mock.Anything, mock.Anything).
		Return(confirmation, nil)
	fx.publisher.EXPECT().
		PublishOrderConfirmed(mock.Anything, mock.Anything).
		Return(domainerrors.ErrTransportFailed)
	fx.receipts.EXPECT().
		EncodeReceipt("ord_001", int64(330)).
		Return([]byte("png"), nil)

	result, err := fx.service.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ord_001", result.OrderID)
}

func TestCheckoutService_Submit_ReceiptFailureTolerated(t *testing.T) {
	fx := createTestCheckoutService(t)
	seedCart(t, fx.cart)

	confirmation := &entity.OrderConfirmation{OrderID: "ord_002", GrandTotal: 330, TaxAmount: 30}
	fx.gateway.EXPECT().
		SubmitOrder(mock.Anything, mock.Anything).
		Return(confirmation, nil)
	fx.publisher.EXPECT().
		PublishOrderConfirmed(mock.Anything, mock.Anything).
		Return(nil)
	fx.receipts.EXPECT().
		EncodeReceipt("ord_002", int64(330)).
		Return(nil, domainerrors.ErrInternalError)

	result, err := fx.service.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ord_002", result.OrderID)
	assert.Nil(t, result.ReceiptQR)
}
