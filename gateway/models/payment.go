package models

// Status is the lifecycle outcome of a payment submission.
type Status string

const (
	// StatusRejected means the request failed validation and never reached
	// the bank. Rejected payments are never stored.
	StatusRejected Status = "Rejected"
	// StatusAuthorized means the acquiring bank approved the payment.
	StatusAuthorized Status = "Authorized"
	// StatusDeclined means the acquiring bank refused the payment.
	StatusDeclined Status = "Declined"
)

// PaymentRequest is the inbound, untrusted request to charge a card. It lives
// only for the duration of one submission; the full card number and CVV are
// discarded once the authorization call completes.
type PaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         int    `json:"cvv"`
}

// Payment is the durable record of a processed payment. It is written once
// and never updated; only the last four digits of the card number are kept.
type Payment struct {
	ID                 string `json:"id"`
	CardNumberLastFour string `json:"card_number_last_four"`
	ExpiryMonth        int    `json:"expiry_month"`
	ExpiryYear         int    `json:"expiry_year"`
	Currency           string `json:"currency"`
	Amount             int64  `json:"amount"`
	Status             Status `json:"status"`
	AuthorizationCode  string `json:"authorization_code,omitempty"`
}

// ValidationErrorResponse is returned when a payment request violates one or
// more validation rules. Errors holds one message per violated rule.
type ValidationErrorResponse struct {
	Status Status   `json:"status"`
	Errors []string `json:"errors"`
}
