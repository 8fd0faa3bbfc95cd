package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alovak/payment-gateway/gateway/models"
	"github.com/go-chi/chi/v5"
)

// API is the HTTP boundary of the payment gateway.
type API struct {
	processor *Processor
	reader    *ReadService
}

func NewAPI(processor *Processor, reader *ReadService) *API {
	return &API{
		processor: processor,
		reader:    reader,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/", a.postPayment)
		r.Get("/{paymentID}", a.getPayment)
	})
}

func (a *API) postPayment(w http.ResponseWriter, r *http.Request) {
	req := models.PaymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if errs := Validate(req, time.Now()); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ValidationErrorResponse{
			Status: models.StatusRejected,
			Errors: errs,
		})
		return
	}

	payment, err := a.processor.Process(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrBankUnavailable) || errors.Is(err, ErrBankResponseMalformed) {
			http.Error(w, err.Error(), http.StatusBadGateway)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payment)
}

func (a *API) getPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	payment, err := a.reader.GetPayment(r.Context(), paymentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payment)
}
