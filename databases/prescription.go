package databases

// go generate: mockery --name PrescriptionDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pharmassist/pharmassist-api/models"
)

const prescriptionCollection = "prescriptions"

// PrescriptionDatabase defines the interface for prescription database operations
type PrescriptionDatabase interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) error
	GetPrescriptionsByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Prescription, error)
	GetAllPrescriptions(ctx context.Context, limit, page int) ([]models.Prescription, error)
	UpdatePrescriptionStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Prescription, error)
}

type prescriptionDatabase struct {
	collection CollectionHelper
}

// NewPrescriptionDatabase creates a new prescription database instance
func NewPrescriptionDatabase(dbHelper DatabaseHelper) PrescriptionDatabase {
	return &prescriptionDatabase{
		collection: dbHelper.Collection(prescriptionCollection),
	}
}

func (p *prescriptionDatabase) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	if prescription.ID.IsZero() {
		prescription.ID = primitive.NewObjectID()
	}
	prescription.UploadedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := p.collection.InsertOne(ctx, prescription)
	return err
}

func (p *prescriptionDatabase) GetPrescriptionsByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Prescription, error) {
	cursor, err := p.collection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"uploadedAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (p *prescriptionDatabase) GetAllPrescriptions(ctx context.Context, limit, page int) ([]models.Prescription, error) {
	opts := newMongoPaginate(limit, page).getPaginatedOpts().SetSort(bson.M{"uploadedAt": -1})
	cursor, err := p.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// UpdatePrescriptionStatus persists the new status and returns the
// post-update prescription, or mongo.ErrNoDocuments when the id is unknown.
func (p *prescriptionDatabase) UpdatePrescriptionStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := p.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&prescription)
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}
