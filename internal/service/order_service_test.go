package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CesarJOtizM/didactic-succotash/internal/catalog"
	"github.com/CesarJOtizM/didactic-succotash/internal/model"
	"github.com/CesarJOtizM/didactic-succotash/internal/repository"
	"github.com/CesarJOtizM/didactic-succotash/internal/routing"
)

// stubGateway forces every attempt to a fixed outcome and counts calls.
type stubGateway struct {
	succeed bool
	panics  bool
	calls   int
}

func (g *stubGateway) Attempt(_ context.Context, method model.PaymentMethod, _ int64, _ string) model.ProviderOutcome {
	g.calls++
	if g.panics {
		panic("gateway exploded")
	}
	return model.ProviderOutcome{
		Success:       g.succeed,
		TransactionID: "txn_stub",
		ProviderID:    method.ID,
	}
}

func testCatalog() *catalog.Catalog {
	return catalog.New(map[string][]model.PaymentMethod{
		"CO": {
			{
				ID:      "co_card",
				Name:    "credit_card",
				Type:    model.TypeCreditCard,
				Enabled: true,
				Configuration: model.MethodConfiguration{
					MinAmount: 1000,
					MaxAmount: 10000000,
					Currency:  "COP",
				},
			},
		},
	})
}

func newTestService(gw routing.Gateway) (*OrderService, *repository.MemoryOrderRepository) {
	repo := repository.NewMemoryOrderRepository()
	table := routing.DefaultTable()
	router := routing.NewRouter(gw, table)
	svc := NewOrderService(repo, testCatalog(), router)
	return svc, repo
}

func createTestOrder(t *testing.T, svc *OrderService, amount int64, country string) *model.PaymentOrder {
	t.Helper()
	order, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		Amount:         amount,
		Description:    "Test payment",
		CountryIsoCode: country,
		BaseURL:        "http://localhost:8080",
	})
	require.NoError(t, err)
	return order
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc, _ := newTestService(&stubGateway{succeed: true})

	t.Run("happy: order starts pending with zero attempts", func(t *testing.T) {
		order := createTestOrder(t, svc, 75000, "CO")

		assert.Equal(t, model.StatusPending, order.Status)
		assert.Equal(t, 0, order.Attempts)
		assert.Equal(t, "payment_order", order.Type)
		assert.NotEmpty(t, order.UUID)
		assert.Contains(t, order.PaymentURL, order.UUID)
	})

	t.Run("happy: round-trip via get", func(t *testing.T) {
		order := createTestOrder(t, svc, 75000, "CO")

		fetched, err := svc.GetOrder(context.Background(), order.UUID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, fetched.Status)
		assert.Equal(t, 0, fetched.Attempts)
		assert.Equal(t, int64(75000), fetched.Amount)
		assert.Contains(t, fetched.PaymentURL, order.UUID)
	})

	t.Run("bad: non-positive amount", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), CreateOrderParams{
			Amount:         0,
			Description:    "x",
			CountryIsoCode: "CO",
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "amount", verr.Field)
	})

	t.Run("bad: empty description", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), CreateOrderParams{
			Amount:         100,
			Description:    "",
			CountryIsoCode: "CO",
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "description", verr.Field)
	})

	t.Run("bad: lowercase country code", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), CreateOrderParams{
			Amount:         100,
			Description:    "x",
			CountryIsoCode: "co",
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "country_iso_code", verr.Field)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	svc, _ := newTestService(&stubGateway{})

	t.Run("bad: malformed uuid is a validation error, not not-found", func(t *testing.T) {
		_, err := svc.GetOrder(context.Background(), "not-a-uuid")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("bad: unknown uuid is not-found", func(t *testing.T) {
		_, err := svc.GetOrder(context.Background(), "550e8400-e29b-41d4-a716-446655440000")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestOrderService_ProcessOrder(t *testing.T) {
	t.Run("happy: successful payment completes the order", func(t *testing.T) {
		gw := &stubGateway{succeed: true}
		svc, _ := newTestService(gw)
		order := createTestOrder(t, svc, 75000, "CO")

		result, err := svc.ProcessOrder(context.Background(), order.UUID, "")
		require.NoError(t, err)

		assert.False(t, result.Declined)
		assert.Equal(t, "txn_stub", result.TransactionID)

		updated := result.Order
		assert.Equal(t, model.StatusCompleted, updated.Status)
		assert.Equal(t, 1, updated.Attempts)
		assert.Equal(t, "co_card", updated.Provider)
		assert.Equal(t, "txn_stub", updated.TransactionID)
		require.NotNil(t, updated.ProcessedAt)
	})

	t.Run("happy: declined payment is a successful call with failed order", func(t *testing.T) {
		gw := &stubGateway{succeed: false}
		svc, _ := newTestService(gw)
		order := createTestOrder(t, svc, 75000, "CO")

		result, err := svc.ProcessOrder(context.Background(), order.UUID, "")
		require.NoError(t, err, "a decline is not a use-case failure")

		assert.True(t, result.Declined)
		assert.NotEmpty(t, result.TransactionID)
		assert.Equal(t, model.StatusFailed, result.Order.Status)
		assert.Equal(t, 1, result.Order.Attempts)
		assert.Equal(t, routing.ProviderAllFailed, result.Order.Provider)
	})

	t.Run("happy: attempts increment by one per call on failed orders", func(t *testing.T) {
		gw := &stubGateway{succeed: false}
		svc, _ := newTestService(gw)
		order := createTestOrder(t, svc, 75000, "CO")

		for i := 1; i <= 3; i++ {
			result, err := svc.ProcessOrder(context.Background(), order.UUID, "")
			require.NoError(t, err)
			assert.Equal(t, i, result.Order.Attempts)
		}
	})

	t.Run("bad: completed order rejects reprocessing untouched", func(t *testing.T) {
		gw := &stubGateway{succeed: true}
		svc, repo := newTestService(gw)
		order := createTestOrder(t, svc, 75000, "CO")

		_, err := svc.ProcessOrder(context.Background(), order.UUID, "")
		require.NoError(t, err)
		callsAfterFirst := gw.calls

		_, err = svc.ProcessOrder(context.Background(), order.UUID, "")
		assert.ErrorIs(t, err, ErrAlreadyProcessed)

		assert.Equal(t, callsAfterFirst, gw.calls, "gateway must not be invoked again")

		stored, err := repo.FindByUUID(context.Background(), order.UUID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Attempts, "attempts unchanged by the rejected call")
	})

	t.Run("bad: unsupported country fails the order and counts the attempt", func(t *testing.T) {
		gw := &stubGateway{succeed: true}
		svc, repo := newTestService(gw)
		order := createTestOrder(t, svc, 75000, "XX")

		_, err := svc.ProcessOrder(context.Background(), order.UUID, "")

		var noMethods *NoEligibleMethodsError
		require.ErrorAs(t, err, &noMethods)
		assert.Equal(t, "XX", noMethods.Country)
		assert.Equal(t, int64(75000), noMethods.Amount)
		assert.Zero(t, gw.calls)

		stored, ferr := repo.FindByUUID(context.Background(), order.UUID)
		require.NoError(t, ferr)
		assert.Equal(t, model.StatusFailed, stored.Status)
		assert.Equal(t, 1, stored.Attempts)
		assert.Empty(t, stored.Provider)
		assert.Empty(t, stored.TransactionID)
		require.NotNil(t, stored.ProcessedAt)
	})

	t.Run("bad: amount outside every method's bounds counts the attempt", func(t *testing.T) {
		gw := &stubGateway{succeed: true}
		svc, repo := newTestService(gw)
		order := createTestOrder(t, svc, 500, "CO") // below co_card min of 1000

		_, err := svc.ProcessOrder(context.Background(), order.UUID, "")

		var noMethods *NoEligibleMethodsError
		require.ErrorAs(t, err, &noMethods)

		stored, ferr := repo.FindByUUID(context.Background(), order.UUID)
		require.NoError(t, ferr)
		assert.Equal(t, model.StatusFailed, stored.Status)
		assert.Equal(t, 1, stored.Attempts)
	})

	t.Run("bad: malformed uuid short-circuits before lookup", func(t *testing.T) {
		svc, _ := newTestService(&stubGateway{})
		_, err := svc.ProcessOrder(context.Background(), "nope", "")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("bad: unknown order is not-found", func(t *testing.T) {
		svc, _ := newTestService(&stubGateway{})
		_, err := svc.ProcessOrder(context.Background(), "550e8400-e29b-41d4-a716-446655440000", "")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("bad: gateway panic triggers compensating write", func(t *testing.T) {
		gw := &stubGateway{panics: true}
		svc, repo := newTestService(gw)
		order := createTestOrder(t, svc, 75000, "CO")

		_, err := svc.ProcessOrder(context.Background(), order.UUID, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "routing failed")

		stored, ferr := repo.FindByUUID(context.Background(), order.UUID)
		require.NoError(t, ferr)
		assert.Equal(t, model.StatusFailed, stored.Status)
		assert.Equal(t, 1, stored.Attempts)
	})

	t.Run("happy: injected clock stamps processed_at", func(t *testing.T) {
		fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		gw := &stubGateway{succeed: true}
		svc, _ := newTestService(gw)
		svc.WithClock(func() time.Time { return fixed })
		order := createTestOrder(t, svc, 75000, "CO")

		result, err := svc.ProcessOrder(context.Background(), order.UUID, "")
		require.NoError(t, err)
		require.NotNil(t, result.Order.ProcessedAt)
		assert.Equal(t, fixed, *result.Order.ProcessedAt)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	gw := &stubGateway{succeed: true}
	svc, _ := newTestService(gw)

	first := createTestOrder(t, svc, 75000, "CO")
	second := createTestOrder(t, svc, 85000, "CO")
	_, err := svc.ProcessOrder(context.Background(), second.UUID, "")
	require.NoError(t, err)

	t.Run("happy: lists all orders", func(t *testing.T) {
		orders, err := svc.ListOrders(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("happy: filters by status", func(t *testing.T) {
		pending, err := svc.ListOrders(context.Background(), model.StatusPending)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, first.UUID, pending[0].UUID)

		completed, err := svc.ListOrders(context.Background(), model.StatusCompleted)
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, second.UUID, completed[0].UUID)
	})

	t.Run("bad: unknown status filter", func(t *testing.T) {
		_, err := svc.ListOrders(context.Background(), "bogus")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestOrderService_ProcessOrder_PreferredMethod(t *testing.T) {
	// Catalog with two methods; the preferred, less reliable one must win
	// when the gateway approves everything.
	cat := catalog.New(map[string][]model.PaymentMethod{
		"CO": {
			{ID: "co_card", Name: "credit_card", Type: model.TypeCreditCard, Enabled: true,
				Configuration: model.MethodConfiguration{Currency: "COP"}},
			{ID: "co_cash", Name: "oxxo", Type: model.TypeCash, Enabled: true,
				Configuration: model.MethodConfiguration{Currency: "COP"}},
		},
	})

	gw := &stubGateway{succeed: true}
	repo := repository.NewMemoryOrderRepository()
	router := routing.NewRouter(gw, routing.DefaultTable())
	svc := NewOrderService(repo, cat, router)

	order := createTestOrder(t, svc, 75000, "CO")

	result, err := svc.ProcessOrder(context.Background(), order.UUID, "co_cash")
	require.NoError(t, err)
	assert.Equal(t, "co_cash", result.Order.Provider)
}

func TestOrderService_ProcessOrder_PersistenceError(t *testing.T) {
	// failingRepo surfaces update errors directly; no compensating write.
	svc, repo := newTestService(&stubGateway{succeed: true})
	order := createTestOrder(t, svc, 75000, "CO")

	failing := &failingUpdateRepo{MemoryOrderRepository: repo}
	broken := NewOrderService(failing, testCatalog(), routing.NewRouter(&stubGateway{succeed: true}, routing.DefaultTable()))

	_, err := broken.ProcessOrder(context.Background(), order.UUID, "")
	assert.ErrorIs(t, err, errUpdateBroken)
}

var errUpdateBroken = errors.New("update broken")

type failingUpdateRepo struct {
	*repository.MemoryOrderRepository
}

func (r *failingUpdateRepo) Update(context.Context, string, repository.OrderUpdate) (*model.PaymentOrder, error) {
	return nil, errUpdateBroken
}
