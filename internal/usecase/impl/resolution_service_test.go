package impl

import (
	"context"
	"testing"
	"time"

	"pos/config"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	mockService "pos/internal/mocks/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// resolutionServiceFixtures holds all test dependencies for resolution service tests.
type resolutionServiceFixtures struct {
	service usecase.ResolutionUsecase
	catalog *mockService.MockCatalogClient
	scanner *mockService.MockScanSource
	cart    usecase.CartUsecase
}

func createTestResolutionService(t *testing.T) resolutionServiceFixtures {
	catalog := mockService.NewMockCatalogClient(t)
	scanner := mockService.NewMockScanSource(t)
	cart := NewCartService(discardLogger())
	service := NewResolutionService(&config.Config{}, catalog, cart, scanner, discardLogger())

	return resolutionServiceFixtures{
		service: service,
		catalog: catalog,
		scanner: scanner,
		cart:    cart,
	}
}

func TestResolutionService_SubmitCode_EmptyCodeRejected(t *testing.T) {
	fx := createTestResolutionService(t)

	for _, code := range []string{"", "   ", "\t\n"} {
		_, err := fx.service.SubmitCode(context.Background(), code)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyCode)
	}

	// No lookup was issued and the session is untouched.
	assert.Equal(t, entity.ResolutionIdle, fx.service.Current().State)
}

func TestResolutionService_SubmitCode_Resolved(t *testing.T) {
	fx := createTestResolutionService(t)

	product := greenTea()
	fx.catalog.EXPECT().
		Lookup(mock.Anything, "451").
		Return(product, nil)

	attempt, err := fx.service.SubmitCode(context.Background(), " 451 ")
	require.NoError(t, err)
	assert.Equal(t, entity.ResolutionResolved, attempt.State)
	assert.Equal(t, "451", attempt.RawCode)
	require.NotNil(t, attempt.Product)
	assert.Equal(t, "おーいお茶", attempt.Product.Name)

	current := fx.service.Current()
	assert.Equal(t, entity.ResolutionResolved, current.State)
}

func TestResolutionService_SubmitCode_NotFound(t *testing.T) {
	fx := createTestResolutionService(t)

	fx.catalog.EXPECT().
		Lookup(mock.Anything, "999").
		Return(nil, domainerrors.ErrProductNotFound)

	attempt, err := fx.service.SubmitCode(context.Background(), "999")
	require.NoError(t, err)
	assert.Equal(t, entity.ResolutionNotFound, attempt.State)
	assert.Nil(t, attempt.Product)
	assert.Empty(t, attempt.FailureReason)
}

func TestResolutionService_SubmitCode_TransportFailure(t *testing.T) {
	fx := createTestResolutionService(t)

	fx.catalog.EXPECT().
		Lookup(mock.Anything, "451").
		Return(nil, errors.Wrap(domainerrors.ErrTransportFailed, "connection refused"))

	attempt, err := fx.service.SubmitCode(context.Background(), "451")
	require.NoError(t, err)
	assert.Equal(t, entity.ResolutionTransportFailed, attempt.State)
	assert.Nil(t, attempt.Product)
	assert.NotEmpty(t, attempt.FailureReason)
}

func TestResolutionService_SubmitCode_StaleResponseSuppressed(t *testing.T) {
	fx := createTestResolutionService(t)
	ctx := context.Background()

	lookupStarted := make(chan struct{})
	releaseLookup := make(chan struct{})

	slow := &entity.Product{ID: "prd_a1", Code: "A-1", Name: "牛乳", UnitPrice: 200}
	fx.catalog.EXPECT().
		Lookup(mock.Anything, "A-1").
		RunAndReturn(func(_ context.Context, _ string) (*entity.Product, error) {
			close(lookupStarted)
			<-releaseLookup

			return slow, nil
		})

	fast := &entity.Product{ID: "prd_b2", Code: "B-2", Name: "パン", UnitPrice: 130}
	fx.catalog.EXPECT().
		Lookup(mock.Anything, "B-2").
		Return(fast, nil)

	firstErr := make(chan error, 1)
	go func() {
		_, err := fx.service.SubmitCode(ctx, "A-1")
		firstErr <- err
	}()

	<-lookupStarted

	// The operator submits a second code while the first lookup is still
	// outstanding. The newer attempt wins.
	attempt, err := fx.service.SubmitCode(ctx, "B-2")
	require.NoError(t, err)
	assert.Equal(t, entity.ResolutionResolved, attempt.State)

	close(releaseLookup)
	assert.ErrorIs(t, <-firstErr, domainerrors.ErrAttemptSuperseded)

	// The late response for A-1 must not overwrite the B-2 resolution.
	current := fx.service.Current()
	assert.Equal(t, entity.ResolutionResolved, current.State)
	require.NotNil(t, current.Product)
	assert.Equal(t, "B-2", current.Product.Code)
}

func TestResolutionService_Abandon_DiscardsOutstandingLookup(t *testing.T) {
	fx := createTestResolutionService(t)
	ctx := context.Background()

	lookupStarted := make(chan struct{})
	releaseLookup := make(chan struct{})

	fx.catalog.EXPECT().
		Lookup(mock.Anything, "451").
		RunAndReturn(func(_ context.Context, _ string) (*entity.Product, error) {
			close(lookupStarted)
			<-releaseLookup

			return greenTea(), nil
		})

	lookupErr := make(chan error, 1)
	go func() {
		_, err := fx.service.SubmitCode(ctx, "451")
		lookupErr <- err
	}()

	<-lookupStarted
	fx.service.Abandon(ctx)
	close(releaseLookup)

	assert.ErrorIs(t, <-lookupErr, domainerrors.ErrAttemptSuperseded)
	assert.Equal(t, entity.ResolutionIdle, fx.service.Current().State)
}

func TestResolutionService_RegisterAndResolve_Success(t *testing.T) {
	fx := createTestResolutionService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		Lookup(mock.Anything, "999").
		Return(nil, domainerrors.ErrProductNotFound).
		Once()

	attempt, err := fx.service.SubmitCode(ctx, "999")
	require.NoError(t, err)
	require.Equal(t, entity.ResolutionNotFound, attempt.State)

	registered := &entity.Product{ID: "prd_999", Code: "999", Name: "新商品", UnitPrice: 500}
	fx.catalog.EXPECT().
		Register(mock.Anything, "999", "新商品", int64(500)).
		Return(registered, nil)

	attempt, err = fx.service.RegisterAndResolve(ctx, " 新商品 ", 500)
	require.NoError(t, err)
	assert.Equal(t, entity.ResolutionResolved, attempt.State)
	require.NotNil(t, attempt.Product)
	assert.Equal(t, int64(500), attempt.Product.UnitPrice)
}

func TestResolutionService_RegisterAndResolve_ConflictFallsBackToLookup(t *testing.T) {
	fx := createTestResolutionService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		Lookup(mock.Anything, "999").
		Return(nil, domainerrors.ErrProductNotFound).
		Once()

	_, err := fx.service.SubmitCode(ctx, "999")
	require.NoError(t, err)

	// Another terminal registered the code first. One re-lookup recovers
	// the winning registration.
	fx.catalog.EXPECT().
		Register(mock.Anything, "999", "新商品", int64(500)).
		Return(nil, domainerrors.ErrRegistrationConflict)

	winner := &entity.Product{ID: "prd_999", Code: "999", Name: "既存商品", UnitPrice: 480}
	fx.catalog.EXPECT().
		Lookup(mock.Anything, "999").
		Return(winner, nil).
		Once()

	attempt, err := fx.service.RegisterAndResolve(ctx, "新商品", 500)
	require.NoError(t, err)
	assert.Equal(t, entity.ResolutionResolved, attempt.State)
	require.NotNil(t, attempt.Product)
	assert.Equal(t, "既存商品", attempt.Product.Name)
}

func TestResolutionService_RegisterAndResolve_InvalidInput(t *testing.T) {
	fx := createTestResolutionService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterAndResolve(ctx, "   ", 100)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRegistration)

	_, err = fx.service.RegisterAndResolve(ctx, "商品", -1)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRegistration)
}

func TestResolutionService_RegisterAndResolve_RequiresNotFoundState(t *testing.T) {
	fx := createTestResolutionService(t)

	_, err := fx.service.RegisterAndResolve(context.Background(), "商品", 100)
	assert.ErrorIs(t, err, domainerrors.ErrResolutionState)
}

func TestResolutionService_AddToCart_ResolvedProduct(t *testing.T) {
	fx := createTestResolutionService(t)
	ctx := context.Background()

	fx.catalog.EXPECT().
		Lookup(mock.Anything, "451").
		Return(greenTea(), nil)

	_, err := fx.service.SubmitCode(ctx, "451")
	require.NoError(t, err)

	cart, err := fx.service.AddToCart(ctx, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
	assert.Equal(t, int64(330), cart.GrandTotal)

	// Acting on the attempt consumes it.
	assert.Equal(t, entity.ResolutionIdle, fx.service.Current().State)
}

func TestResolutionService_AddToCart_InvalidQuantity(t *testing.T) {
	fx := createTestResolutionService(t)

	_, err := fx.service.AddToCart(context.Background(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestResolutionService_AddToCart_RequiresResolvedState(t *testing.T) {
	fx := createTestResolutionService(t)

	_, err := fx.service.AddToCart(context.Background(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrResolutionState)
	assert.Empty(t, fx.cart.Snapshot().Items)
}

func TestResolutionService_Scan_SingleShot(t *testing.T) {
	fx := createTestResolutionService(t)
	ctx := context.Background()

	codes := make(chan string, 2)
	fx.scanner.EXPECT().
		Start(mock.Anything).
		Return((<-chan string)(codes), nil).
		Once()
	fx.scanner.EXPECT().
		Stop().
		Return(nil).
		Once()

	fx.catalog.EXPECT().
		Lookup(mock.Anything, "451").
		Return(greenTea(), nil).
		Once()

	require.NoError(t, fx.service.StartScan(ctx))
	assert.True(t, fx.service.Scanning())

	codes <- "451"

	require.Eventually(t, func() bool {
		return fx.service.Current().State == entity.ResolutionResolved
	}, time.Second, 5*time.Millisecond)

	// The session ended with the first decode.
	assert.False(t, fx.service.Scanning())

	// A decode arriving after the session ended is dropped.
	codes <- "452"
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, "451", fx.service.Current().RawCode)
}

func TestResolutionService_StartScan_ReplacesActiveSession(t *testing.T) {
	fx := createTestResolutionService(t)
	ctx := context.Background()

	first := make(chan string)
	second := make(chan string)
	fx.scanner.EXPECT().
		Start(mock.Anything).
		Return((<-chan string)(first), nil).
		Once()
	fx.scanner.EXPECT().
		Start(mock.Anything).
		Return((<-chan string)(second), nil).
		Once()
	fx.scanner.EXPECT().
		Stop().
		Return(nil).
		Times(2)

	require.NoError(t, fx.service.StartScan(ctx))
	require.NoError(t, fx.service.StartScan(ctx))
	assert.True(t, fx.service.Scanning())

	// The first watcher winding down must not release the new session.
	close(first)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, fx.service.Scanning())

	fx.service.StopScan(ctx)
	assert.False(t, fx.service.Scanning())
}

func TestResolutionService_Scan_SourceClosedReleasesSession(t *testing.T) {
	fx := createTestResolutionService(t)

	codes := make(chan string)
	fx.scanner.EXPECT().
		Start(mock.Anything).
		Return((<-chan string)(codes), nil).
		Once()
	fx.scanner.EXPECT().
		Stop().
		Return(nil).
		Once()

	require.NoError(t, fx.service.StartScan(context.Background()))
	close(codes)

	require.Eventually(t, func() bool {
		return !fx.service.Scanning()
	}, time.Second, 5*time.Millisecond)
}

func TestResolutionService_StartScan_SourceError(t *testing.T) {
	fx := createTestResolutionService(t)

	fx.scanner.EXPECT().
		Start(mock.Anything).
		Return(nil, errors.New("device busy"))

	err := fx.service.StartScan(context.Background())
	require.Error(t, err)
	assert.False(t, fx.service.Scanning())
}

func TestResolutionService_StopScan_NoActiveSession(t *testing.T) {
	fx := createTestResolutionService(t)

	// Must not touch the scan source when nothing was started.
	fx.service.StopScan(context.Background())
	assert.False(t, fx.service.Scanning())
}
