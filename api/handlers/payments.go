package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/models"
)

// Payment represents the checkout handler
type Payment struct{}

type createPaymentIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntentHandler creates a Stripe payment intent for an order
// total. Amount arrives in major units and is converted to cents.
func (h Payment) CreatePaymentIntentHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	session, ok := api.SessionFromContext(r.Context())
	if !ok {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, nil)
		return
	}

	var req createPaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	if req.Amount <= 0 {
		config.ErrorCode("amount must be greater than zero", http.StatusBadRequest, models.CodeInvalidRequest, w, nil)
		return
	}
	if req.Currency == "" {
		req.Currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("userId", session.UserID)

	pi, err := paymentintent.New(params)
	if err != nil {
		config.ErrorCode("payment provider rejected the request", http.StatusBadGateway, models.CodeUpstreamFailed, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(createPaymentIntentResponse{ClientSecret: pi.ClientSecret})
}
