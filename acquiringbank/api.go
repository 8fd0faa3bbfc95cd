package acquiringbank

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// API is the HTTP surface of the bank simulator.
type API struct {
	bank *Service
}

func NewAPI(bank *Service) *API {
	return &API{
		bank: bank,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/payments", a.authorizePayment)
}

func (a *API) authorizePayment(w http.ResponseWriter, r *http.Request) {
	req := AuthorizationRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := a.bank.Authorize(req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
