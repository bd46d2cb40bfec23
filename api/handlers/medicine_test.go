package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/databases/mocks"
	"github.com/pharmassist/pharmassist-api/models"
)

// authedRequest builds a request carrying an authenticated session, the way
// the bearer middleware would
func authedRequest(method, target string, body io.Reader, userID primitive.ObjectID, role string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(api.WithSession(req.Context(), models.Session{
		UserID: userID.Hex(),
		Email:  "user@example.com",
		Role:   role,
	}))
}

func TestTakeDoseHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	medicineID := primitive.NewObjectID()

	t.Run("successful take decrements stock", func(t *testing.T) {
		mockDB := mocks.NewMedicineDatabase(t)
		mockDB.On("TakeDose", mock.Anything, medicineID, userID).Return(&models.Medicine{
			ID:     medicineID,
			UserID: userID,
			Name:   "Paracetamol",
			Stock:  9,
		}, nil)

		handler := Medicine{DB: mockDB}

		req := authedRequest("POST", "/medicines/"+medicineID.Hex()+"/take", nil, userID, models.RolePatient)
		req = mux.SetURLVars(req, map[string]string{"medicine_id": medicineID.Hex()})
		w := httptest.NewRecorder()

		handler.TakeDoseHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response models.TakeDoseResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.Equal(t, 9, response.Medicine.Stock)
		assert.False(t, response.OutOfStock)
	})

	t.Run("exhausted stock returns outOfStock instead of an error", func(t *testing.T) {
		mockDB := mocks.NewMedicineDatabase(t)
		mockDB.On("TakeDose", mock.Anything, medicineID, userID).Return(nil, mongo.ErrNoDocuments)
		mockDB.On("GetMedicineByID", mock.Anything, medicineID, userID).Return(&models.Medicine{
			ID:     medicineID,
			UserID: userID,
			Name:   "Paracetamol",
			Stock:  0,
		}, nil)

		handler := Medicine{DB: mockDB}

		req := authedRequest("POST", "/medicines/"+medicineID.Hex()+"/take", nil, userID, models.RolePatient)
		req = mux.SetURLVars(req, map[string]string{"medicine_id": medicineID.Hex()})
		w := httptest.NewRecorder()

		handler.TakeDoseHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response models.TakeDoseResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		assert.NoError(t, err)
		assert.True(t, response.OutOfStock)
		assert.Equal(t, models.CodeOutOfStock, response.Code)
		assert.Equal(t, 0, response.Medicine.Stock)
	})

	t.Run("unknown medicine returns 404", func(t *testing.T) {
		mockDB := mocks.NewMedicineDatabase(t)
		mockDB.On("TakeDose", mock.Anything, medicineID, userID).Return(nil, mongo.ErrNoDocuments)
		mockDB.On("GetMedicineByID", mock.Anything, medicineID, userID).Return(nil, mongo.ErrNoDocuments)

		handler := Medicine{DB: mockDB}

		req := authedRequest("POST", "/medicines/"+medicineID.Hex()+"/take", nil, userID, models.RolePatient)
		req = mux.SetURLVars(req, map[string]string{"medicine_id": medicineID.Hex()})
		w := httptest.NewRecorder()

		handler.TakeDoseHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeNotFound)
	})

	t.Run("missing session returns 401", func(t *testing.T) {
		handler := Medicine{DB: mocks.NewMedicineDatabase(t)}

		req := httptest.NewRequest("POST", "/medicines/"+medicineID.Hex()+"/take", nil)
		w := httptest.NewRecorder()

		handler.TakeDoseHandler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateMedicineHandler(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectCreate   bool
		wantThreshold  int
	}{
		{
			name: "successful creation applies default refill threshold",
			requestBody: map[string]interface{}{
				"name":      "Metformin",
				"dosage":    "500mg",
				"frequency": "Twice a day",
				"times":     []string{"08:00", "20:00"},
				"stock":     60,
			},
			expectedStatus: http.StatusCreated,
			expectCreate:   true,
			wantThreshold:  5,
		},
		{
			name: "explicit zero refill threshold is kept",
			requestBody: map[string]interface{}{
				"name":            "Metformin",
				"stock":           60,
				"refillThreshold": 0,
			},
			expectedStatus: http.StatusCreated,
			expectCreate:   true,
			wantThreshold:  0,
		},
		{
			name:           "missing name",
			requestBody:    map[string]interface{}{"stock": 10},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative stock",
			requestBody:    map[string]interface{}{"name": "Metformin", "stock": -1},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := mocks.NewMedicineDatabase(t)

			var created *models.Medicine
			if tt.expectCreate {
				mockDB.On("CreateMedicine", mock.Anything, mock.AnythingOfType("*models.Medicine")).
					Run(func(args mock.Arguments) {
						created = args.Get(1).(*models.Medicine)
					}).Return(nil)
			}

			handler := Medicine{DB: mockDB}

			body, _ := json.Marshal(tt.requestBody)
			req := authedRequest("POST", "/medicines", bytes.NewBuffer(body), userID, models.RolePatient)
			w := httptest.NewRecorder()

			handler.CreateMedicineHandler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectCreate {
				assert.Equal(t, userID, created.UserID)
				assert.Equal(t, tt.wantThreshold, created.RefillThreshold)
			}
		})
	}
}

func TestDeleteMedicineHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	medicineID := primitive.NewObjectID()

	t.Run("successful deletion", func(t *testing.T) {
		mockDB := mocks.NewMedicineDatabase(t)
		mockDB.On("DeleteMedicine", mock.Anything, medicineID, userID).Return(int64(1), nil)

		handler := Medicine{DB: mockDB}

		req := authedRequest("DELETE", "/medicines/"+medicineID.Hex(), nil, userID, models.RolePatient)
		req = mux.SetURLVars(req, map[string]string{"medicine_id": medicineID.Hex()})
		w := httptest.NewRecorder()

		handler.DeleteMedicineHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("medicine owned by someone else looks like a miss", func(t *testing.T) {
		mockDB := mocks.NewMedicineDatabase(t)
		mockDB.On("DeleteMedicine", mock.Anything, medicineID, userID).Return(int64(0), nil)

		handler := Medicine{DB: mockDB}

		req := authedRequest("DELETE", "/medicines/"+medicineID.Hex(), nil, userID, models.RolePatient)
		req = mux.SetURLVars(req, map[string]string{"medicine_id": medicineID.Hex()})
		w := httptest.NewRecorder()

		handler.DeleteMedicineHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeNotFound)
	})
}

func TestMedicinesByUserHandler(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("empty cabinet returns an empty array", func(t *testing.T) {
		mockDB := mocks.NewMedicineDatabase(t)
		mockDB.On("GetMedicinesByUserID", mock.Anything, userID).Return(nil, nil)

		handler := Medicine{DB: mockDB}

		req := authedRequest("GET", "/medicines", nil, userID, models.RolePatient)
		w := httptest.NewRecorder()

		handler.MedicinesByUserHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})
}
