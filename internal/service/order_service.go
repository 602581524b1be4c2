package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/CesarJOtizM/didactic-succotash/internal/catalog"
	"github.com/CesarJOtizM/didactic-succotash/internal/model"
	"github.com/CesarJOtizM/didactic-succotash/internal/monitoring"
	"github.com/CesarJOtizM/didactic-succotash/internal/repository"
	"github.com/CesarJOtizM/didactic-succotash/internal/routing"
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

type OrderService struct {
	repo    repository.OrderRepository
	catalog *catalog.Catalog
	router  *routing.Router
	now     func() time.Time
}

func NewOrderService(repo repository.OrderRepository, cat *catalog.Catalog, router *routing.Router) *OrderService {
	return &OrderService{repo: repo, catalog: cat, router: router, now: time.Now}
}

// WithClock replaces the time source, for tests.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

type CreateOrderParams struct {
	Amount         int64
	Description    string
	CountryIsoCode string
	BaseURL        string
}

// CreateOrder validates the request, assigns a fresh uuid and persists the
// order in pending state with zero attempts.
func (s *OrderService) CreateOrder(ctx context.Context, params CreateOrderParams) (*model.PaymentOrder, error) {
	if params.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "must be greater than 0"}
	}
	if len(params.Description) == 0 || len(params.Description) > 255 {
		return nil, &ValidationError{Field: "description", Message: "must be between 1 and 255 characters"}
	}
	if !countryCodeRe.MatchString(params.CountryIsoCode) {
		return nil, &ValidationError{Field: "country_iso_code", Message: "must be a 2-letter uppercase ISO code"}
	}

	id := uuid.NewString()
	order := &model.PaymentOrder{
		UUID:           id,
		Type:           "payment_order",
		Amount:         params.Amount,
		Description:    params.Description,
		CountryIsoCode: params.CountryIsoCode,
		CreatedAt:      s.now(),
		PaymentURL:     fmt.Sprintf("%s/api/payment_order/%s", params.BaseURL, id),
		Status:         model.StatusPending,
		Attempts:       0,
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	monitoring.OrderAmounts.WithLabelValues(order.CountryIsoCode).Observe(float64(order.Amount))
	log.Info().
		Str("order_uuid", order.UUID).
		Int64("amount", order.Amount).
		Str("country", order.CountryIsoCode).
		Msg("payment order created")

	return order, nil
}

// GetOrder returns the order for a syntactically valid uuid.
func (s *OrderService) GetOrder(ctx context.Context, orderUUID string) (*model.PaymentOrder, error) {
	if _, err := uuid.Parse(orderUUID); err != nil {
		return nil, &ValidationError{Field: "uuid", Message: "invalid uuid format"}
	}
	return s.repo.FindByUUID(ctx, orderUUID)
}

// ListOrders returns all orders newest first, optionally filtered by status.
func (s *OrderService) ListOrders(ctx context.Context, status string) ([]*model.PaymentOrder, error) {
	if status != "" && status != model.StatusPending && status != model.StatusCompleted && status != model.StatusFailed {
		return nil, &ValidationError{Field: "status", Message: "must be one of pending, completed, failed"}
	}

	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}

	filtered := orders[:0]
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// ProcessResult is the outcome of a successful process-order call. Declined
// means routing exhausted every provider: the use case still succeeded, the
// payment did not.
type ProcessResult struct {
	Declined      bool
	TransactionID string
	Order         *model.PaymentOrder
}

// ProcessOrder runs the full lifecycle transition for one order: validate,
// guard the terminal state, select eligible methods, route, persist the
// result in a single update.
func (s *OrderService) ProcessOrder(ctx context.Context, orderUUID, preferredMethodID string) (*ProcessResult, error) {
	if _, err := uuid.Parse(orderUUID); err != nil {
		return nil, &ValidationError{Field: "uuid", Message: "invalid uuid format"}
	}

	order, err := s.repo.FindByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}

	if order.Status == model.StatusCompleted {
		return nil, ErrAlreadyProcessed
	}

	eligible := s.catalog.EligibleMethods(order.CountryIsoCode, order.Amount)
	if len(eligible) == 0 {
		if _, err := s.markProcessed(ctx, order, model.StatusFailed, "", ""); err != nil {
			return nil, err
		}
		monitoring.OrdersProcessed.WithLabelValues(model.StatusFailed).Inc()
		return nil, &NoEligibleMethodsError{Country: order.CountryIsoCode, Amount: order.Amount}
	}

	log.Info().
		Str("order_uuid", order.UUID).
		Int64("amount", order.Amount).
		Str("country", order.CountryIsoCode).
		Int("eligible_methods", len(eligible)).
		Msg("processing payment order")

	outcome, err := s.routeSafely(ctx, order, eligible, preferredMethodID)
	if err != nil {
		return nil, err
	}

	status := model.StatusFailed
	if outcome.Success {
		status = model.StatusCompleted
	}

	updated, err := s.markProcessed(ctx, order, status, outcome.ProviderID, outcome.TransactionID)
	if err != nil {
		return nil, err
	}

	monitoring.OrdersProcessed.WithLabelValues(status).Inc()
	return &ProcessResult{
		Declined:      !outcome.Success,
		TransactionID: outcome.TransactionID,
		Order:         updated,
	}, nil
}

// routeSafely wraps the routing call so a misbehaving gateway cannot leave
// the order stuck in pending: on panic it attempts one compensating write
// (failed, attempt counted) and surfaces the panic as an error. Failure of
// the compensating write itself is only logged.
func (s *OrderService) routeSafely(ctx context.Context, order *model.PaymentOrder, eligible []model.PaymentMethod, preferredMethodID string) (outcome model.ProviderOutcome, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Str("order_uuid", order.UUID).
				Interface("panic", rec).
				Msg("routing panicked")
			if _, werr := s.markProcessed(ctx, order, model.StatusFailed, "", ""); werr != nil {
				log.Error().Err(werr).
					Str("order_uuid", order.UUID).
					Msg("compensating write failed")
			}
			err = fmt.Errorf("payment routing failed: %v", rec)
		}
	}()

	outcome = s.router.Route(ctx, eligible, order.Amount, order.UUID, preferredMethodID)
	return outcome, nil
}

// markProcessed performs the single field-level update that closes a
// processing attempt.
func (s *OrderService) markProcessed(ctx context.Context, order *model.PaymentOrder, status, provider, transactionID string) (*model.PaymentOrder, error) {
	attempts := order.Attempts + 1
	processedAt := s.now()

	update := repository.OrderUpdate{
		Status:      &status,
		Attempts:    &attempts,
		ProcessedAt: &processedAt,
	}
	if provider != "" {
		update.Provider = &provider
	}
	if transactionID != "" {
		update.TransactionID = &transactionID
	}

	return s.repo.Update(ctx, order.UUID, update)
}
