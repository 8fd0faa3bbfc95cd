package models

// BankPaymentRequest is the sanitized projection of a payment request sent to
// the acquiring bank. It exists only for the outbound call and is never
// persisted.
type BankPaymentRequest struct {
	CardNumber string `json:"card_number"`
	// ExpiryDate is the combined expiry in MM/YYYY.
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        int    `json:"cvv"`
}

// BankPaymentResponse is the acquiring bank's authorization decision. The
// authorization code is opaque; it is present only on approval.
type BankPaymentResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}
