package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/CesarJOtizM/didactic-succotash/internal/model"
	"github.com/CesarJOtizM/didactic-succotash/internal/monitoring"
)

// Gateway performs a single payment attempt against one provider. The
// simulated implementation below stands in for a real payment processor
// client.
type Gateway interface {
	Attempt(ctx context.Context, method model.PaymentMethod, amount int64, orderID string) model.ProviderOutcome
}

// Rand is the source of randomness for the simulation. *rand.Rand satisfies
// it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
}

// SimulatedGateway draws each attempt's outcome from the reliability table
// and models the method's declared processing delay.
type SimulatedGateway struct {
	reliability ReliabilityTable
	rand        Rand
	sleep       func(time.Duration)
}

func NewSimulatedGateway(reliability ReliabilityTable, rnd Rand, sleep func(time.Duration)) *SimulatedGateway {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &SimulatedGateway{reliability: reliability, rand: rnd, sleep: sleep}
}

func (g *SimulatedGateway) Attempt(_ context.Context, method model.PaymentMethod, amount int64, orderID string) model.ProviderOutcome {
	g.simulateDelay(method.Configuration.ProcessingTime)

	transactionID := uuid.NewString()
	reliability := g.reliability.Reliability(method)

	if g.rand.Float64() < reliability {
		log.Info().
			Str("order_uuid", orderID).
			Str("provider", method.Name).
			Str("transaction_id", transactionID).
			Int64("amount", amount).
			Msg("payment attempt succeeded")
		return model.ProviderOutcome{
			Success:       true,
			TransactionID: transactionID,
			ProviderID:    method.ID,
		}
	}

	log.Warn().
		Str("order_uuid", orderID).
		Str("provider", method.Name).
		Str("transaction_id", transactionID).
		Int64("amount", amount).
		Msg("payment attempt failed")
	return model.ProviderOutcome{
		Success:       false,
		TransactionID: transactionID,
		ProviderID:    method.ID,
		ErrorMessage:  fmt.Sprintf("error procesando pago con %s", method.Metadata.DisplayName),
	}
}

// simulateDelay models provider latency: instant methods return at once,
// anything else waits 100-600ms.
func (g *SimulatedGateway) simulateDelay(processingTime string) {
	if processingTime == "" || processingTime == "instant" {
		return
	}
	delay := time.Duration(100+g.rand.Float64()*500) * time.Millisecond
	g.sleep(delay)
}

var _ Gateway = (*SimulatedGateway)(nil)

func recordAttempt(providerID string, success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	monitoring.PaymentAttempts.WithLabelValues(providerID, status).Inc()
}
