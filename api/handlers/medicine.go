package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
)

const defaultRefillThreshold = 5

// Medicine represents the medicine cabinet handler
type Medicine struct {
	DB databases.MedicineDatabase
}

type createMedicineRequest struct {
	Name            string   `json:"name"`
	Dosage          string   `json:"dosage"`
	Frequency       string   `json:"frequency"`
	Times           []string `json:"times"`
	Stock           int      `json:"stock"`
	RefillThreshold *int     `json:"refillThreshold"`
	Description     string   `json:"description"`
}

// sessionUserID resolves the authenticated user's ObjectID from the request context
func sessionUserID(r *http.Request) (primitive.ObjectID, models.Session, error) {
	session, ok := api.SessionFromContext(r.Context())
	if !ok {
		return primitive.NilObjectID, models.Session{}, errors.New("no session in context")
	}
	id, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return primitive.NilObjectID, session, err
	}
	return id, session, nil
}

// MedicinesByUserHandler returns the caller's medicine cabinet
func (h Medicine) MedicinesByUserHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	medicines, err := h.DB.GetMedicinesByUserID(ctx, userID)
	if err != nil {
		config.ErrorStatus("failed to get medicines", http.StatusInternalServerError, w, err)
		return
	}
	if medicines == nil {
		medicines = []models.Medicine{}
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(medicines)
}

// CreateMedicineHandler adds a medicine to the caller's cabinet
func (h Medicine) CreateMedicineHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	var req createMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	if req.Name == "" {
		config.ErrorCode("name is required", http.StatusBadRequest, models.CodeInvalidRequest, w, nil)
		return
	}
	if req.Stock < 0 {
		config.ErrorCode("stock cannot be negative", http.StatusBadRequest, models.CodeInvalidRequest, w, nil)
		return
	}

	threshold := defaultRefillThreshold
	if req.RefillThreshold != nil {
		threshold = *req.RefillThreshold
	}

	medicine := &models.Medicine{
		UserID:          userID,
		Name:            req.Name,
		Dosage:          req.Dosage,
		Frequency:       req.Frequency,
		Times:           req.Times,
		Stock:           req.Stock,
		RefillThreshold: threshold,
		Description:     req.Description,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.CreateMedicine(ctx, medicine); err != nil {
		config.ErrorStatus("failed to create medicine", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(medicine)
}

// TakeDoseHandler records one taken dose. The decrement happens in a single
// conditional update, so concurrent requests cannot push stock below zero;
// an exhausted medicine returns outOfStock instead of an error.
func (h Medicine) TakeDoseHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	medicineID, err := primitive.ObjectIDFromHex(mux.Vars(r)["medicine_id"])
	if err != nil {
		config.ErrorCode("invalid medicine id", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	medicine, err := h.DB.TakeDose(ctx, medicineID, userID)
	if err == nil {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.TakeDoseResponse{Medicine: *medicine})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to take dose", http.StatusInternalServerError, w, err)
		return
	}

	// No match means the medicine is gone or its stock is already zero
	existing, err := h.DB.GetMedicineByID(ctx, medicineID, userID)
	if err != nil {
		config.ErrorCode("medicine not found", http.StatusNotFound, models.CodeNotFound, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.TakeDoseResponse{Medicine: *existing, OutOfStock: true, Code: models.CodeOutOfStock})
}

// DeleteMedicineHandler removes a medicine from the caller's cabinet
func (h Medicine) DeleteMedicineHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	medicineID, err := primitive.ObjectIDFromHex(mux.Vars(r)["medicine_id"])
	if err != nil {
		config.ErrorCode("invalid medicine id", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	deleted, err := h.DB.DeleteMedicine(ctx, medicineID, userID)
	if err != nil {
		config.ErrorStatus("failed to delete medicine", http.StatusInternalServerError, w, err)
		return
	}
	if deleted == 0 {
		config.ErrorCode("medicine not found", http.StatusNotFound, models.CodeNotFound, w, nil)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "medicine deleted"})
}
