package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/api/dispatch"
	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
	"github.com/pharmassist/pharmassist-api/notify"
)

const defaultOrderQuantity = 30

// Order represents the order workflow handler
type Order struct {
	DB         databases.OrderDatabase
	UDB        databases.UserDatabase
	Dispatcher *dispatch.Dispatcher
	Mailer     notify.Mailer
}

type createOrderRequest struct {
	Medicines []orderItemRequest `json:"medicines"`
	Type      string             `json:"type"`
}

type orderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrderHandler places a refill order for the caller
func (h Order) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	if len(req.Medicines) == 0 {
		config.ErrorCode("order must contain at least one medicine", http.StatusBadRequest, models.CodeInvalidRequest, w, nil)
		return
	}
	if req.Type == "" {
		req.Type = "refill"
	}

	items := make([]models.OrderItem, 0, len(req.Medicines))
	for _, item := range req.Medicines {
		if item.Name == "" {
			config.ErrorCode("medicine name is required", http.StatusBadRequest, models.CodeInvalidRequest, w, nil)
			return
		}
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = defaultOrderQuantity
		}
		items = append(items, models.OrderItem{Name: item.Name, Quantity: quantity})
	}

	order := &models.Order{
		UserID:    userID,
		Medicines: items,
		Status:    models.StatusPending,
		Type:      req.Type,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.CreateOrder(ctx, order); err != nil {
		config.ErrorStatus("failed to create order", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(order)
}

// OrdersByUserHandler returns the caller's orders, newest first
func (h Order) OrdersByUserHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	orders, err := h.DB.GetOrdersByUserID(ctx, userID)
	if err != nil {
		config.ErrorStatus("failed to get orders", http.StatusInternalServerError, w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(orders)
}

// AllOrdersHandler returns every order for the pharmacist dashboard
func (h Order) AllOrdersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := 10
	page := 0
	if parsed, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	if parsed, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && parsed >= 0 {
		page = parsed
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	orders, err := h.DB.GetAllOrders(ctx, limit, page)
	if err != nil {
		config.ErrorStatus("failed to get orders", http.StatusInternalServerError, w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(orders)
}

// UpdateOrderStatusHandler moves an order to a new status. Dispatching an
// order also assigns a delivery task; every transition notifies the patient
// by email on a background goroutine. Failures in those side effects are
// logged, never surfaced, so the persisted status update always wins.
func (h Order) UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	orderID, err := primitive.ObjectIDFromHex(mux.Vars(r)["order_id"])
	if err != nil {
		config.ErrorCode("invalid order id", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		config.ErrorCode("unknown order status", http.StatusBadRequest, models.CodeInvalidStatus, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	order, err := h.DB.UpdateOrderStatus(ctx, orderID, req.Status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorCode("order not found", http.StatusNotFound, models.CodeNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to update order status", http.StatusInternalServerError, w, err)
		return
	}

	if order.Status == models.StatusDispatched {
		if _, err := h.Dispatcher.Dispatch(ctx, order.ID); err != nil {
			zap.S().Errorw("failed to assign delivery for dispatched order",
				"error", err, "orderId", order.ID.Hex())
		}
	}

	go h.notifyPatient(order)

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(order)
}

// notifyPatient runs off the request goroutine, so it gets a fresh context
// that outlives the response.
func (h Order) notifyPatient(order *models.Order) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	patient, err := h.UDB.GetUserByID(ctx, order.UserID)
	if err != nil {
		zap.S().Errorw("failed to fetch patient for order notification",
			"error", err, "orderId", order.ID.Hex())
		return
	}
	if err := h.Mailer.SendOrderStatusEmail(patient.Email, patient.Name, order); err != nil {
		zap.S().Errorw("failed to send order status email",
			"error", err, "orderId", order.ID.Hex())
	}
}
