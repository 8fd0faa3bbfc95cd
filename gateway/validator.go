package gateway

import (
	"time"

	"github.com/alovak/payment-gateway/gateway/models"
	"github.com/alovak/payment-gateway/internal/cardgen"
	"github.com/alovak/payment-gateway/internal/expiry"
)

var supportedCurrencies = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"GBP": {},
}

// Validate checks a payment request against the card, expiry, currency,
// amount and CVV rules and returns one message per violated rule. Every rule
// is evaluated so the caller sees all violations at once; an empty result
// means the request is valid. Validate is pure: it never reaches the bank or
// the store.
func Validate(req models.PaymentRequest, now time.Time) []string {
	var errs []string

	switch {
	case req.CardNumber == "":
		errs = append(errs, "Card number is required")
	case !cardgen.IsDigits(req.CardNumber):
		errs = append(errs, "Card number must contain only digits")
	case len(req.CardNumber) < 14 || len(req.CardNumber) > 19:
		errs = append(errs, "Card number must be between 14 and 19 digits long")
	}

	monthOK := req.ExpiryMonth >= 1 && req.ExpiryMonth <= 12
	if !monthOK {
		if req.ExpiryMonth == 0 {
			errs = append(errs, "Expiry month is required")
		} else {
			errs = append(errs, "Expiry month must be between 1 and 12")
		}
	}

	yearOK := req.ExpiryYear >= now.Year()
	if !yearOK {
		if req.ExpiryYear == 0 {
			errs = append(errs, "Expiry year is required")
		} else {
			errs = append(errs, "Expiry year must be greater than or equal to the current year")
		}
	}

	// The combined check only applies once month and year are themselves
	// plausible. A card expiring in the current month is still valid.
	if monthOK && yearOK && !expiry.InFuture(req.ExpiryMonth, req.ExpiryYear, now) {
		errs = append(errs, "Expiry must be in the future")
	}

	switch {
	case req.Currency == "":
		errs = append(errs, "Currency is required")
	case len(req.Currency) != 3:
		errs = append(errs, "Currency must be 3 characters")
	default:
		if _, ok := supportedCurrencies[req.Currency]; !ok {
			errs = append(errs, "Currency must be one of the following: USD, EUR, GBP")
		}
	}

	if req.Amount <= 0 {
		errs = append(errs, "Amount must be greater than zero")
	}

	switch {
	case req.CVV == 0:
		errs = append(errs, "CVV is required")
	case req.CVV < 100 || req.CVV > 999:
		errs = append(errs, "CVV must be 3 digits")
	}

	return errs
}
