package model

import (
	"time"
)

// Order statuses. An order starts pending and moves to exactly one of the
// other two when it is processed. Completed is terminal.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Payment method types.
const (
	TypeCreditCard     = "credit_card"
	TypeDebitCard      = "debit_card"
	TypeBankTransfer   = "bank_transfer"
	TypeDigitalWallet  = "digital_wallet"
	TypeCash           = "cash"
	TypeCredit         = "credit"
	TypeCryptocurrency = "cryptocurrency"
)

type PaymentOrder struct {
	UUID           string     `json:"uuid"`
	Type           string     `json:"type"`
	Amount         int64      `json:"amount"`
	Description    string     `json:"description"`
	CountryIsoCode string     `json:"country_iso_code"`
	CreatedAt      time.Time  `json:"created_at"`
	PaymentURL     string     `json:"payment_url"`
	Status         string     `json:"status"`
	Provider       string     `json:"provider,omitempty"`
	TransactionID  string     `json:"transaction_id,omitempty"`
	Attempts       int        `json:"attempts"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
}

type PaymentMethod struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Type           string              `json:"type"`
	CountryIsoCode string              `json:"country_iso_code"`
	Enabled        bool                `json:"enabled"`
	Configuration  MethodConfiguration `json:"configuration"`
	Metadata       MethodMetadata      `json:"metadata"`
}

type MethodConfiguration struct {
	MinAmount      int64      `json:"min_amount,omitempty"`
	MaxAmount      int64      `json:"max_amount,omitempty"`
	Currency       string     `json:"currency"`
	ProcessingTime string     `json:"processing_time,omitempty"`
	Fees           MethodFees `json:"fees"`
}

type MethodFees struct {
	Fixed      int64   `json:"fixed,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
}

type MethodMetadata struct {
	DisplayName         string   `json:"display_name"`
	Description         string   `json:"description"`
	IconURL             string   `json:"icon_url,omitempty"`
	SupportedCurrencies []string `json:"supported_currencies"`
	RequiresDocument    bool     `json:"requires_document"`
	InstantPayment      bool     `json:"instant_payment"`
}

// ProviderOutcome is the result of one routing call. It is never persisted
// on its own; the lifecycle layer folds it into the order.
type ProviderOutcome struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	ProviderID    string `json:"provider_id"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

// EligibleForAmount reports whether the method is enabled and the amount is
// within its configured bounds. A zero bound means unbounded on that side.
func (m PaymentMethod) EligibleForAmount(amount int64) bool {
	if !m.Enabled {
		return false
	}
	if m.Configuration.MinAmount > 0 && amount < m.Configuration.MinAmount {
		return false
	}
	if m.Configuration.MaxAmount > 0 && amount > m.Configuration.MaxAmount {
		return false
	}
	return true
}

// FeeForAmount computes the total fee (fixed plus percentage) the method
// charges for the given amount, in the smallest currency unit.
func (m PaymentMethod) FeeForAmount(amount int64) int64 {
	fees := m.Configuration.Fees
	total := fees.Fixed
	if fees.Percentage > 0 {
		total += int64(float64(amount) * fees.Percentage / 100)
	}
	return total
}
