package gateway_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alovak/payment-gateway/acquiringbank"
	"github.com/alovak/payment-gateway/gateway"
	"github.com/alovak/payment-gateway/gateway/models"
	"github.com/stretchr/testify/require"
)

// TestPaymentFlow boots the acquiring bank simulator and the gateway on
// ephemeral ports and drives the whole submit/lookup flow over real HTTP.
func TestPaymentFlow(t *testing.T) {
	logger := testLogger()

	bankApp := acquiringbank.NewApp(logger, &acquiringbank.Config{HTTPAddr: "localhost:0"})
	require.NoError(t, bankApp.Start())
	t.Cleanup(bankApp.Shutdown)

	cfg := gateway.DefaultConfig()
	cfg.HTTPAddr = "localhost:0"
	cfg.BankBaseURL = "http://" + bankApp.Addr

	gatewayApp := gateway.NewApp(logger, cfg)
	require.NoError(t, gatewayApp.Start())
	t.Cleanup(gatewayApp.Shutdown)

	baseURL := "http://" + gatewayApp.Addr

	submit := func(t *testing.T, card string) *http.Response {
		t.Helper()

		body := fmt.Sprintf(`{
			"card_number": %q,
			"expiry_month": 12,
			"expiry_year": %d,
			"currency": "USD",
			"amount": 100,
			"cvv": 123
		}`, card, time.Now().Year()+1)

		resp, err := http.Post(baseURL+"/api/payments", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		return resp
	}

	lookup := func(t *testing.T, id string) *http.Response {
		t.Helper()

		resp, err := http.Get(baseURL + "/api/payments/" + id)
		require.NoError(t, err)
		return resp
	}

	t.Run("authorized payment round trip", func(t *testing.T) {
		// The simulator authorizes card numbers with an odd last digit.
		resp := submit(t, "4111111111111111")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		payment := models.Payment{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payment))
		require.Equal(t, models.StatusAuthorized, payment.Status)
		require.Equal(t, "1111", payment.CardNumberLastFour)
		require.Equal(t, int64(100), payment.Amount)
		require.Equal(t, "USD", payment.Currency)
		require.NotEmpty(t, payment.AuthorizationCode)

		got := lookup(t, payment.ID)
		defer got.Body.Close()

		require.Equal(t, http.StatusOK, got.StatusCode)

		stored := models.Payment{}
		require.NoError(t, json.NewDecoder(got.Body).Decode(&stored))
		require.Equal(t, payment, stored)
	})

	t.Run("declined payment is persisted", func(t *testing.T) {
		resp := submit(t, "1234567890123456")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		payment := models.Payment{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payment))
		require.Equal(t, models.StatusDeclined, payment.Status)
		require.Equal(t, "3456", payment.CardNumberLastFour)
		require.Empty(t, payment.AuthorizationCode)

		got := lookup(t, payment.ID)
		defer got.Body.Close()

		require.Equal(t, http.StatusOK, got.StatusCode)
	})

	t.Run("rejected payment never reaches the bank", func(t *testing.T) {
		body := `{
			"card_number": "1234",
			"expiry_month": 12,
			"expiry_year": 2100,
			"currency": "USD",
			"amount": 100,
			"cvv": 123
		}`

		resp, err := http.Post(baseURL+"/api/payments", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		rejection := models.ValidationErrorResponse{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rejection))
		require.Equal(t, models.StatusRejected, rejection.Status)
		require.NotEmpty(t, rejection.Errors)
	})

	t.Run("lookup of unknown payment", func(t *testing.T) {
		resp := lookup(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479")
		defer resp.Body.Close()

		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("health endpoints", func(t *testing.T) {
		for _, path := range []string{"/-/live", "/-/ready"} {
			resp, err := http.Get(baseURL + path)
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}
	})
}
