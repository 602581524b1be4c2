package dto

type CreatePaymentOrderRequest struct {
	Amount         int64  `json:"amount" binding:"required,gt=0"`
	Description    string `json:"description" binding:"required,min=1,max=255"`
	CountryIsoCode string `json:"country_iso_code" binding:"required,len=2,uppercase"`
}

type ProcessPaymentOrderRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
}
