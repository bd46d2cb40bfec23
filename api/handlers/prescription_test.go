package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmassist/pharmassist-api/api/dispatch"
	"github.com/pharmassist/pharmassist-api/databases/mocks"
	"github.com/pharmassist/pharmassist-api/models"
)

func TestUpdatePrescriptionStatusHandler(t *testing.T) {
	prescriptionID := primitive.NewObjectID()
	pharmacistID := primitive.NewObjectID()

	t.Run("pharmacist approves a prescription", func(t *testing.T) {
		mockDB := mocks.NewPrescriptionDatabase(t)
		mockDB.On("UpdatePrescriptionStatus", mock.Anything, prescriptionID, models.StatusProcessed).Return(&models.Prescription{
			ID:     prescriptionID,
			Status: models.StatusProcessed,
		}, nil)

		handler := Prescription{DB: mockDB}

		body, _ := json.Marshal(map[string]string{"status": models.StatusProcessed})
		req := authedRequest("PATCH", "/prescriptions/"+prescriptionID.Hex()+"/status", bytes.NewBuffer(body), pharmacistID, models.RolePharmacist)
		req = mux.SetURLVars(req, map[string]string{"prescription_id": prescriptionID.Hex()})
		w := httptest.NewRecorder()

		handler.UpdatePrescriptionStatusHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var updated models.Prescription
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
		assert.Equal(t, models.StatusProcessed, updated.Status)
	})

	t.Run("dispatching a prescription assigns a delivery task", func(t *testing.T) {
		mockDB := mocks.NewPrescriptionDatabase(t)
		userDB := mocks.NewUserDatabase(t)
		deliveryDB := mocks.NewDeliveryDatabase(t)

		mockDB.On("UpdatePrescriptionStatus", mock.Anything, prescriptionID, models.StatusDispatched).Return(&models.Prescription{
			ID:     prescriptionID,
			Status: models.StatusDispatched,
		}, nil)
		userDB.On("GetUsersByRole", mock.Anything, models.RoleDelivery).Return([]models.User{
			{ID: primitive.NewObjectID(), Role: models.RoleDelivery},
		}, nil)

		var created *models.Delivery
		deliveryDB.On("CreateDelivery", mock.Anything, mock.AnythingOfType("*models.Delivery")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Delivery)
			}).Return(nil)

		handler := Prescription{
			DB:         mockDB,
			Dispatcher: dispatch.New(deliveryDB, userDB, dispatch.FirstAvailable{}),
		}

		body, _ := json.Marshal(map[string]string{"status": models.StatusDispatched})
		req := authedRequest("PATCH", "/prescriptions/"+prescriptionID.Hex()+"/status", bytes.NewBuffer(body), pharmacistID, models.RolePharmacist)
		req = mux.SetURLVars(req, map[string]string{"prescription_id": prescriptionID.Hex()})
		w := httptest.NewRecorder()

		handler.UpdatePrescriptionStatusHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, prescriptionID, created.OrderID)
	})

	t.Run("unknown prescription returns 404", func(t *testing.T) {
		mockDB := mocks.NewPrescriptionDatabase(t)
		mockDB.On("UpdatePrescriptionStatus", mock.Anything, prescriptionID, models.StatusProcessed).Return(nil, mongo.ErrNoDocuments)

		handler := Prescription{DB: mockDB}

		body, _ := json.Marshal(map[string]string{"status": models.StatusProcessed})
		req := authedRequest("PATCH", "/prescriptions/"+prescriptionID.Hex()+"/status", bytes.NewBuffer(body), pharmacistID, models.RolePharmacist)
		req = mux.SetURLVars(req, map[string]string{"prescription_id": prescriptionID.Hex()})
		w := httptest.NewRecorder()

		handler.UpdatePrescriptionStatusHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		handler := Prescription{DB: mocks.NewPrescriptionDatabase(t)}

		body, _ := json.Marshal(map[string]string{"status": "approved"})
		req := authedRequest("PATCH", "/prescriptions/"+prescriptionID.Hex()+"/status", bytes.NewBuffer(body), pharmacistID, models.RolePharmacist)
		req = mux.SetURLVars(req, map[string]string{"prescription_id": prescriptionID.Hex()})
		w := httptest.NewRecorder()

		handler.UpdatePrescriptionStatusHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeInvalidStatus)
	})
}

func TestPrescriptionsByUserHandler(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("no uploads returns an empty array", func(t *testing.T) {
		mockDB := mocks.NewPrescriptionDatabase(t)
		mockDB.On("GetPrescriptionsByUserID", mock.Anything, userID).Return(nil, nil)

		handler := Prescription{DB: mockDB}

		req := authedRequest("GET", "/prescriptions", nil, userID, models.RolePatient)
		w := httptest.NewRecorder()

		handler.PrescriptionsByUserHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})
}
