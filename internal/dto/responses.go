package dto

import (
	"github.com/CesarJOtizM/didactic-succotash/internal/model"
	"github.com/CesarJOtizM/didactic-succotash/internal/service"
)

// PaymentOrderResponse is the wire shape of an order: a typed envelope with
// the attributes nested, matching the public API contract.
type PaymentOrderResponse struct {
	UUID       string                 `json:"uuid"`
	Type       string                 `json:"type"`
	Attributes PaymentOrderAttributes `json:"attributes"`
}

type PaymentOrderAttributes struct {
	Amount         int64  `json:"amount"`
	Description    string `json:"description"`
	CountryIsoCode string `json:"country_iso_code"`
	CreatedAt      string `json:"created_at"`
	PaymentURL     string `json:"payment_url"`
	Status         string `json:"status"`
	Provider       string `json:"provider"`
	TransactionID  string `json:"transaction_id,omitempty"`
	Attempts       int    `json:"attempts"`
	ProcessedAt    string `json:"processed_at,omitempty"`
}

func NewPaymentOrderResponse(order *model.PaymentOrder) PaymentOrderResponse {
	attrs := PaymentOrderAttributes{
		Amount:         order.Amount,
		Description:    order.Description,
		CountryIsoCode: order.CountryIsoCode,
		CreatedAt:      order.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		PaymentURL:     order.PaymentURL,
		Status:         order.Status,
		Provider:       order.Provider,
		TransactionID:  order.TransactionID,
		Attempts:       order.Attempts,
	}
	if order.ProcessedAt != nil {
		attrs.ProcessedAt = order.ProcessedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	return PaymentOrderResponse{
		UUID:       order.UUID,
		Type:       order.Type,
		Attributes: attrs,
	}
}

type PaymentOrderListResponse struct {
	Orders []PaymentOrderResponse `json:"payment_orders"`
	Total  int                    `json:"total"`
}

// ProcessPaymentResponse reports the outcome of a process call that the use
// case itself completed. Status is "success" for an approved payment and
// "Error" for a declined one; callers must not confuse the latter with an
// HTTP-level failure.
type ProcessPaymentResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

func NewProcessPaymentResponse(result *service.ProcessResult) ProcessPaymentResponse {
	status := "success"
	if result.Declined {
		status = "Error"
	}
	return ProcessPaymentResponse{
		Status:        status,
		TransactionID: result.TransactionID,
	}
}

type PaymentMethodResponse struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	Type           string                    `json:"type"`
	CountryIsoCode string                    `json:"country_iso_code"`
	Configuration  model.MethodConfiguration `json:"configuration"`
	Metadata       model.MethodMetadata      `json:"metadata"`
	Fee            int64                     `json:"fee,omitempty"`
}

type PaymentMethodListResponse struct {
	Country string                  `json:"country"`
	Methods []PaymentMethodResponse `json:"payment_methods"`
	Total   int                     `json:"total"`
}

func NewPaymentMethodListResponse(country string, methods []service.MethodWithFee) PaymentMethodListResponse {
	out := make([]PaymentMethodResponse, len(methods))
	for i, entry := range methods {
		out[i] = PaymentMethodResponse{
			ID:             entry.Method.ID,
			Name:           entry.Method.Name,
			Type:           entry.Method.Type,
			CountryIsoCode: entry.Method.CountryIsoCode,
			Configuration:  entry.Method.Configuration,
			Metadata:       entry.Method.Metadata,
			Fee:            entry.Fee,
		}
	}
	return PaymentMethodListResponse{Country: country, Methods: out, Total: len(out)}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
