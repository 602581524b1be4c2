package routing

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/CesarJOtizM/didactic-succotash/internal/model"
	"github.com/CesarJOtizM/didactic-succotash/internal/monitoring"
)

// Sentinel provider ids for routing outcomes that never reached a provider
// (none eligible) or exhausted all of them.
const (
	ProviderNone      = "none"
	ProviderAllFailed = "all_failed"
)

// Router tries eligible methods in preference order until one succeeds.
// Each method is attempted at most once per call; there is no retry over
// time, only the in-loop failover.
type Router struct {
	gateway     Gateway
	reliability ReliabilityTable
}

func NewRouter(gateway Gateway, reliability ReliabilityTable) *Router {
	return &Router{gateway: gateway, reliability: reliability}
}

// Route runs the failover loop over the eligible methods and returns the
// outcome of the first successful attempt, or a synthetic failure when no
// method is eligible or every attempt failed.
func (r *Router) Route(ctx context.Context, methods []model.PaymentMethod, amount int64, orderID, preferredMethodID string) model.ProviderOutcome {
	if len(methods) == 0 {
		monitoring.RoutingOutcomes.WithLabelValues("no_methods").Inc()
		return model.ProviderOutcome{
			Success:       false,
			TransactionID: uuid.NewString(),
			ProviderID:    ProviderNone,
			ErrorMessage:  "no hay métodos de pago disponibles",
		}
	}

	ordered := r.rank(methods, preferredMethodID)

	for _, method := range ordered {
		log.Info().
			Str("order_uuid", orderID).
			Str("provider", method.Name).
			Float64("reliability", r.reliability.Reliability(method)).
			Msg("attempting payment")

		outcome := r.gateway.Attempt(ctx, method, amount, orderID)
		recordAttempt(method.ID, outcome.Success)

		if outcome.Success {
			monitoring.RoutingOutcomes.WithLabelValues("success").Inc()
			log.Info().
				Str("order_uuid", orderID).
				Str("provider", method.Name).
				Str("transaction_id", outcome.TransactionID).
				Msg("smart routing succeeded")
			return outcome
		}

		log.Warn().
			Str("order_uuid", orderID).
			Str("provider", method.Name).
			Msg("provider declined, trying next")
	}

	monitoring.RoutingOutcomes.WithLabelValues("all_failed").Inc()
	log.Warn().
		Str("order_uuid", orderID).
		Int("providers_tried", len(ordered)).
		Msg("all providers failed")
	return model.ProviderOutcome{
		Success:       false,
		TransactionID: uuid.NewString(),
		ProviderID:    ProviderAllFailed,
		ErrorMessage:  fmt.Sprintf("todos los proveedores de pago fallaron para la orden %s", orderID),
	}
}

// rank returns a copy of methods ordered for the failover loop: the
// preferred method first, then by reliability descending. The sort must be
// stable so equally reliable methods keep catalog order.
func (r *Router) rank(methods []model.PaymentMethod, preferredMethodID string) []model.PaymentMethod {
	ordered := make([]model.PaymentMethod, len(methods))
	copy(ordered, methods)

	sort.SliceStable(ordered, func(i, j int) bool {
		if preferredMethodID != "" {
			if ordered[i].ID == preferredMethodID {
				return true
			}
			if ordered[j].ID == preferredMethodID {
				return false
			}
		}
		return r.reliability.Reliability(ordered[i]) > r.reliability.Reliability(ordered[j])
	})

	return ordered
}
