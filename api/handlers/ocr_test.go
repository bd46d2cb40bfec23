package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pharmassist/pharmassist-api/databases/mocks"
	"github.com/pharmassist/pharmassist-api/models"
)

type fakeImageStore struct {
	url string
	err error
}

func (f fakeImageStore) Upload(ctx context.Context, file io.Reader) (string, error) {
	return f.url, f.err
}

type fakeTextExtractor struct {
	text string
	err  error
}

func (f fakeTextExtractor) ExtractText(ctx context.Context, imageURL string) (string, error) {
	return f.text, f.err
}

func multipartImageRequest(t *testing.T, userID primitive.ObjectID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "prescription.jpg")
	assert.NoError(t, err)
	_, err = fw.Write([]byte("fake-image-bytes"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := authedRequest("POST", "/prescriptions/upload", &buf, userID, models.RolePatient)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestExtractMedicines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []models.PrescriptionMedicine
	}{
		{
			name: "single medicine with daily frequency",
			text: "Rx\nParacetamol 500mg take daily after meals",
			expected: []models.PrescriptionMedicine{
				{Name: "Paracetamol", Dosage: "500mg", Frequency: "Once daily"},
			},
		},
		{
			name: "medicine without frequency hint",
			text: "Amoxicillin 250mg with water",
			expected: []models.PrescriptionMedicine{
				{Name: "Amoxicillin", Dosage: "250mg", Frequency: "As directed"},
			},
		},
		{
			name: "multiple medicines across lines",
			text: "Metformin 500mg daily\nIbuprofen 200mg as needed",
			expected: []models.PrescriptionMedicine{
				{Name: "Metformin", Dosage: "500mg", Frequency: "Once daily"},
				{Name: "Ibuprofen", Dosage: "200mg", Frequency: "As directed"},
			},
		},
		{
			name: "liquid dosage units",
			text: "Cetirizine 5ml daily",
			expected: []models.PrescriptionMedicine{
				{Name: "Cetirizine", Dosage: "5ml", Frequency: "Once daily"},
			},
		},
		{
			name: "unreadable text falls back to placeholder list",
			text: "~~~ blurry scan ~~~",
			expected: []models.PrescriptionMedicine{
				{Name: "Paracetamol", Dosage: "500mg", Frequency: "Twice daily"},
				{Name: "Amoxicillin", Dosage: "250mg", Frequency: "Three times daily"},
			},
		},
		{
			name: "empty text falls back to placeholder list",
			text: "",
			expected: []models.PrescriptionMedicine{
				{Name: "Paracetamol", Dosage: "500mg", Frequency: "Twice daily"},
				{Name: "Amoxicillin", Dosage: "250mg", Frequency: "Three times daily"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMedicines(tt.text))
		})
	}
}

func TestUploadPrescriptionHandler(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("successful upload creates a pending prescription", func(t *testing.T) {
		mockDB := mocks.NewPrescriptionDatabase(t)

		var created *models.Prescription
		mockDB.On("CreatePrescription", mock.Anything, mock.AnythingOfType("*models.Prescription")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Prescription)
			}).Return(nil)

		handler := Intake{
			DB:      mockDB,
			Store:   fakeImageStore{url: "https://img.example.com/rx.jpg"},
			Extract: fakeTextExtractor{text: "Paracetamol 500mg daily"},
		}

		w := httptest.NewRecorder()
		handler.UploadPrescriptionHandler(w, multipartImageRequest(t, userID))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, userID, created.UserID)
		assert.Equal(t, "https://img.example.com/rx.jpg", created.ImageURL)
		assert.Equal(t, models.StatusPending, created.Status)
		assert.Equal(t, []models.PrescriptionMedicine{
			{Name: "Paracetamol", Dosage: "500mg", Frequency: "Once daily"},
		}, created.Medicines)
	})

	t.Run("ocr failure still creates the prescription with fallback medicines", func(t *testing.T) {
		mockDB := mocks.NewPrescriptionDatabase(t)

		var created *models.Prescription
		mockDB.On("CreatePrescription", mock.Anything, mock.AnythingOfType("*models.Prescription")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Prescription)
			}).Return(nil)

		handler := Intake{
			DB:      mockDB,
			Store:   fakeImageStore{url: "https://img.example.com/rx.jpg"},
			Extract: fakeTextExtractor{err: errors.New("ocr service unavailable")},
		}

		w := httptest.NewRecorder()
		handler.UploadPrescriptionHandler(w, multipartImageRequest(t, userID))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, created.ExtractedText)
		assert.Len(t, created.Medicines, 2)
	})

	t.Run("image store failure returns 502", func(t *testing.T) {
		handler := Intake{
			DB:      mocks.NewPrescriptionDatabase(t),
			Store:   fakeImageStore{err: errors.New("upload rejected")},
			Extract: fakeTextExtractor{},
		}

		w := httptest.NewRecorder()
		handler.UploadPrescriptionHandler(w, multipartImageRequest(t, userID))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), models.CodeUpstreamFailed)
	})

	t.Run("missing image part is rejected", func(t *testing.T) {
		handler := Intake{
			DB:      mocks.NewPrescriptionDatabase(t),
			Store:   fakeImageStore{},
			Extract: fakeTextExtractor{},
		}

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		assert.NoError(t, mw.WriteField("note", "no file here"))
		assert.NoError(t, mw.Close())

		req := authedRequest("POST", "/prescriptions/upload", &buf, userID, models.RolePatient)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()

		handler.UploadPrescriptionHandler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
