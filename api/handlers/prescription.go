package handlers

import (
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
)

// Prescription represents the prescription review handler
type Prescription struct {
	DB         databases.PrescriptionDatabase
	Dispatcher *dispatch.Dispatcher
}

// PrescriptionsByUserHandler returns the caller's uploaded prescriptions
func (h Prescription) PrescriptionsByUserHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	prescriptions, err := h.DB.GetPrescriptionsByUserID(ctx, userID)
	if err != nil {
		config.ErrorStatus("failed to get prescriptions", http.StatusInternalServerError, w, err)
		return
	}
	if prescriptions == nil {
		prescriptions = []models.Prescription{}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(prescriptions)
}

// AllPrescriptionsHandler returns every prescription for the pharmacist queue
func (h Prescription) AllPrescriptionsHandler(w http.ResponseWriter, r *http.Request) {
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

	prescriptions, err := h.DB.GetAllPrescriptions(ctx, limit, page)
	if err != nil {
		config.ErrorStatus("failed to get prescriptions", http.StatusInternalServerError, w, err)
		return
	}
	if prescriptions == nil {
		prescriptions = []models.Prescription{}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(prescriptions)
}

// UpdatePrescriptionStatusHandler moves a prescription through the review
// workflow. Prescriptions share the order status vocabulary.
func (h Prescription) UpdatePrescriptionStatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	prescriptionID, err := primitive.ObjectIDFromHex(mux.Vars(r)["prescription_id"])
	if err != nil {
		config.ErrorCode("invalid prescription id", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		config.ErrorCode("unknown prescription status", http.StatusBadRequest, models.CodeInvalidStatus, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	prescription, err := h.DB.UpdatePrescriptionStatus(ctx, prescriptionID, req.Status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorCode("prescription not found", http.StatusNotFound, models.CodeNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to update prescription status", http.StatusInternalServerError, w, err)
		return
	}

	if prescription.Status == models.StatusDispatched {
		if _, err := h.Dispatcher.Dispatch(ctx, prescription.ID); err != nil {
			zap.S().Errorw("failed to assign delivery for dispatched prescription",
				"error", err, "prescriptionId", prescription.ID.Hex())
		}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(prescription)
}
