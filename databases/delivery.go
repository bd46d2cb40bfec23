package databases

// go generate: mockery --name DeliveryDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pharmassist/pharmassist-api/models"
)

const deliveryCollection = "deliveries"

// DeliveryDatabase defines the interface for delivery database operations
type DeliveryDatabase interface {
	CreateDelivery(ctx context.Context, delivery *models.Delivery) error
	GetDeliveriesByAgentID(ctx context.Context, agentID primitive.ObjectID) ([]models.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, id, agentID primitive.ObjectID, status string) (*models.Delivery, error)
}

type deliveryDatabase struct {
	collection CollectionHelper
}

// NewDeliveryDatabase creates a new delivery database instance
func NewDeliveryDatabase(dbHelper DatabaseHelper) DeliveryDatabase {
	return &deliveryDatabase{
		collection: dbHelper.Collection(deliveryCollection),
	}
}

func (d *deliveryDatabase) CreateDelivery(ctx context.Context, delivery *models.Delivery) error {
	if delivery.ID.IsZero() {
		delivery.ID = primitive.NewObjectID()
	}
	delivery.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := d.collection.InsertOne(ctx, delivery)
	return err
}

func (d *deliveryDatabase) GetDeliveriesByAgentID(ctx context.Context, agentID primitive.ObjectID) ([]models.Delivery, error) {
	cursor, err := d.collection.Find(ctx, bson.M{"agentId": agentID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deliveries []models.Delivery
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, err
	}
	return deliveries, nil
}

// UpdateDeliveryStatus persists the new status for a task owned by agentID.
// The agent filter makes the ownership check and the update one atomic
// operation; an unrelated agent gets mongo.ErrNoDocuments.
func (d *deliveryDatabase) UpdateDeliveryStatus(ctx context.Context, id, agentID primitive.ObjectID, status string) (*models.Delivery, error) {
	var delivery models.Delivery
	err := d.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "agentId": agentID},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&delivery)
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}
