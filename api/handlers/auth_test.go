package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmassist/pharmassist-api/databases/mocks"
	"github.com/pharmassist/pharmassist-api/models"
	notifymocks "github.com/pharmassist/pharmassist-api/notify/mocks"
)

func TestRegisterHandler(t *testing.T) {
	t.Run("successful registration defaults to the patient role", func(t *testing.T) {
		mockDB := mocks.NewUserDatabase(t)
		mockDB.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(nil, mongo.ErrNoDocuments)

		var created *models.User
		mockDB.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.User)
			}).Return(nil)

		// plain mock, the welcome email is sent on a goroutine and may land
		// after the handler returns
		mailer := &notifymocks.Mailer{}
		mailer.On("SendWelcomeEmail", "asha@example.com", "Asha").Return(nil).Maybe()

		handler := Auth{DB: mockDB, Mailer: mailer}

		body, _ := json.Marshal(map[string]string{
			"name":     "Asha",
			"email":    "Asha@Example.com",
			"password": "s3cret-pw",
		})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.RegisterHandler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "asha@example.com", created.Email)
		assert.Equal(t, models.RolePatient, created.Role)
		assert.NotEqual(t, "s3cret-pw", created.Password)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		mockDB := mocks.NewUserDatabase(t)
		mockDB.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(&models.User{
			ID:    primitive.NewObjectID(),
			Email: "asha@example.com",
		}, nil)

		handler := Auth{DB: mockDB, Mailer: &notifymocks.Mailer{}}

		body, _ := json.Marshal(map[string]string{
			"name":     "Asha",
			"email":    "asha@example.com",
			"password": "s3cret-pw",
		})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.RegisterHandler(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		handler := Auth{DB: mocks.NewUserDatabase(t), Mailer: &notifymocks.Mailer{}}

		body, _ := json.Marshal(map[string]string{
			"name":     "Asha",
			"email":    "asha@example.com",
			"password": "s3cret-pw",
			"role":     "Admin",
		})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.RegisterHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		handler := Auth{DB: mocks.NewUserDatabase(t), Mailer: &notifymocks.Mailer{}}

		body, _ := json.Marshal(map[string]string{"email": "asha@example.com"})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.RegisterHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pw"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: string(hash),
		Role:     models.RolePatient,
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		mockDB := mocks.NewUserDatabase(t)
		mockDB.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(user, nil)

		handler := Auth{DB: mockDB}

		body, _ := json.Marshal(map[string]string{"email": "asha@example.com", "password": "s3cret-pw"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.LoginHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response loginResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, user.ID.Hex(), response.User.ID)
		assert.Equal(t, models.RolePatient, response.User.Role)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		mockDB := mocks.NewUserDatabase(t)
		mockDB.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(user, nil)

		handler := Auth{DB: mockDB}

		body, _ := json.Marshal(map[string]string{"email": "asha@example.com", "password": "wrong"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.LoginHandler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeInvalidCredential)
	})

	t.Run("unknown email returns 401", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		mockDB := mocks.NewUserDatabase(t)
		mockDB.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, mongo.ErrNoDocuments)

		handler := Auth{DB: mockDB}

		body, _ := json.Marshal(map[string]string{"email": "ghost@example.com", "password": "s3cret-pw"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		handler.LoginHandler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
