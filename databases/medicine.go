package databases

// go generate: mockery --name MedicineDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pharmassist/pharmassist-api/models"
)

const medicineCollection = "medicines"

// MedicineDatabase defines the interface for medicine database operations
type MedicineDatabase interface {
	GetMedicinesByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Medicine, error)
	GetMedicineByID(ctx context.Context, id, userID primitive.ObjectID) (*models.Medicine, error)
	GetMedicinesDueAt(ctx context.Context, hhmm string) ([]models.Medicine, error)
	CreateMedicine(ctx context.Context, medicine *models.Medicine) error
	TakeDose(ctx context.Context, id, userID primitive.ObjectID) (*models.Medicine, error)
	DeleteMedicine(ctx context.Context, id, userID primitive.ObjectID) (int64, error)
}

type medicineDatabase struct {
	collection CollectionHelper
}

// NewMedicineDatabase creates a new medicine database instance
func NewMedicineDatabase(dbHelper DatabaseHelper) MedicineDatabase {
	return &medicineDatabase{
		collection: dbHelper.Collection(medicineCollection),
	}
}

func (m *medicineDatabase) GetMedicinesByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Medicine, error) {
	cursor, err := m.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var medicines []models.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (m *medicineDatabase) GetMedicineByID(ctx context.Context, id, userID primitive.ObjectID) (*models.Medicine, error) {
	var medicine models.Medicine
	err := m.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&medicine)
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

// GetMedicinesDueAt returns every medicine with a reminder scheduled for the
// given "HH:MM" wall-clock minute, across all patients.
func (m *medicineDatabase) GetMedicinesDueAt(ctx context.Context, hhmm string) ([]models.Medicine, error) {
	cursor, err := m.collection.Find(ctx, bson.M{"times": hhmm})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var medicines []models.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (m *medicineDatabase) CreateMedicine(ctx context.Context, medicine *models.Medicine) error {
	if medicine.ID.IsZero() {
		medicine.ID = primitive.NewObjectID()
	}
	medicine.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := m.collection.InsertOne(ctx, medicine)
	return err
}

// TakeDose decrements stock by exactly one in a single conditional update so
// concurrent takes can never drive stock below zero. Returns the post-update
// medicine, or mongo.ErrNoDocuments when no matching document has stock > 0.
func (m *medicineDatabase) TakeDose(ctx context.Context, id, userID primitive.ObjectID) (*models.Medicine, error) {
	filter := bson.M{"_id": id, "userId": userID, "stock": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"stock": -1}}

	var medicine models.Medicine
	err := m.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&medicine)
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (m *medicineDatabase) DeleteMedicine(ctx context.Context, id, userID primitive.ObjectID) (int64, error) {
	return m.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
}
