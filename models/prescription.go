package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrescriptionMedicine is one extracted (name, dosage, frequency) tuple.
// Order is preserved as extracted from the prescription text.
type PrescriptionMedicine struct {
	Name      string `json:"name" bson:"name"`
	Dosage    string `json:"dosage" bson:"dosage"`
	Frequency string `json:"frequency" bson:"frequency"`
}

// Prescription holds the structure for the prescription collection in
// mongo. Created on OCR upload; status is mutated only by pharmacists.
type Prescription struct {
	ID            primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID     `json:"userId" bson:"userId"`
	ImageURL      string                 `json:"imageUrl" bson:"imageUrl"`
	ExtractedText string                 `json:"extractedText" bson:"extractedText"`
	Medicines     []PrescriptionMedicine `json:"medicines" bson:"medicines"`
	Status        string                 `json:"status" bson:"status"`
	UploadedAt    primitive.DateTime     `json:"uploadedAt" bson:"uploadedAt"`
}
