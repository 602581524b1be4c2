package routing

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CesarJOtizM/didactic-succotash/internal/model"
)

// DefaultReliability is used when neither the method name nor its type has
// a configured entry.
const DefaultReliability = 0.75

// ReliabilityTable maps a payment method name or type to its configured
// success probability in (0,1]. Name entries override type entries.
type ReliabilityTable map[string]float64

// DefaultTable returns the built-in per-provider reliability figures.
func DefaultTable() ReliabilityTable {
	return ReliabilityTable{
		// Credit cards
		"credit_card": 0.95,
		// Bank transfers
		"bank_transfer": 0.92,
		"pse":           0.90,
		"spei":          0.88,
		"pix":           0.96,
		"ach":           0.85,
		"webpay":        0.93,
		"khipu":         0.89,
		"boleto":        0.78,
		// Digital wallets
		"digital_wallet": 0.87,
		"nequi":          0.89,
		"daviplata":      0.86,
		"paypal":         0.91,
		"mercado_pago":   0.88,
		"mach":           0.84,
		// Cash
		"cash":     0.75,
		"oxxo":     0.80,
		"rapipago": 0.72,
		"servipag": 0.77,
		// Debit cards
		"debit_card": 0.93,
		"redcompra":  0.94,
		// Credit
		"credit": 0.82,
		"cleo":   0.81,
	}
}

// LoadTable reads a JSON object of name/type -> probability overrides and
// merges it over the default table.
func LoadTable(path string) (ReliabilityTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reliability file: %w", err)
	}

	overrides := map[string]float64{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse reliability file: %w", err)
	}

	table := DefaultTable()
	for key, p := range overrides {
		if p <= 0 || p > 1 {
			return nil, fmt.Errorf("reliability for %q out of range (0,1]: %v", key, p)
		}
		table[key] = p
	}
	return table, nil
}

// Reliability resolves the success probability for a method: exact name
// first, then its type, then the fixed default.
func (t ReliabilityTable) Reliability(method model.PaymentMethod) float64 {
	if p, ok := t[method.Name]; ok {
		return p
	}
	if p, ok := t[method.Type]; ok {
		return p
	}
	return DefaultReliability
}

// Stats returns a copy of the table for reporting endpoints.
func (t ReliabilityTable) Stats() map[string]float64 {
	out := make(map[string]float64, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
