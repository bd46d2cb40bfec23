package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/api/dispatch"
	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
)

// Delivery represents the delivery agent handler
type Delivery struct {
	DB         databases.DeliveryDatabase
	ODB        databases.OrderDatabase
	Dispatcher *dispatch.Dispatcher
}

type createDeliveryRequest struct {
	OrderID string `json:"orderId"`
}

// MyTasksHandler returns the delivery tasks assigned to the calling agent
func (h Delivery) MyTasksHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	agentID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	deliveries, err := h.DB.GetDeliveriesByAgentID(ctx, agentID)
	if err != nil {
		config.ErrorStatus("failed to get delivery tasks", http.StatusInternalServerError, w, err)
		return
	}
	if deliveries == nil {
		deliveries = []models.Delivery{}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(deliveries)
}

// CreateDeliveryHandler assigns a delivery task for an order on demand.
// Unlike the dispatch triggered by a status change, the caller asked for the
// assignment explicitly, so an empty agent pool is an error here.
func (h Delivery) CreateDeliveryHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		config.ErrorCode("invalid order id", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	order, err := h.ODB.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorCode("order not found", http.StatusNotFound, models.CodeNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get order", http.StatusInternalServerError, w, err)
		return
	}

	delivery, err := h.Dispatcher.Dispatch(ctx, order.ID)
	if err != nil {
		config.ErrorStatus("failed to create delivery", http.StatusInternalServerError, w, err)
		return
	}
	if delivery == nil {
		config.ErrorCode("no delivery agents available", http.StatusNotFound, models.CodeNoAgentAvailable, w, nil)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(delivery)
}

// UpdateDeliveryStatusHandler advances a delivery task. The update filter
// carries the agent id, so a task owned by another agent looks like a miss
// and returns 404 rather than leaking its existence.
func (h Delivery) UpdateDeliveryStatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	agentID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	deliveryID, err := primitive.ObjectIDFromHex(mux.Vars(r)["delivery_id"])
	if err != nil {
		config.ErrorCode("invalid delivery id", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	if !models.ValidDeliveryStatus(req.Status) {
		config.ErrorCode("unknown delivery status", http.StatusBadRequest, models.CodeInvalidStatus, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	delivery, err := h.DB.UpdateDeliveryStatus(ctx, deliveryID, agentID, req.Status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorCode("delivery task not found", http.StatusNotFound, models.CodeNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to update delivery status", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(delivery)
}
