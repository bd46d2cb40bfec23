package databases

// go generate: mockery --name OrderDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pharmassist/pharmassist-api/models"
)

const orderCollection = "orders"

// OrderDatabase defines the interface for order database operations
type OrderDatabase interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	GetOrdersByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	GetAllOrders(ctx context.Context, limit, page int) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
}

type orderDatabase struct {
	collection CollectionHelper
}

// NewOrderDatabase creates a new order database instance
func NewOrderDatabase(dbHelper DatabaseHelper) OrderDatabase {
	return &orderDatabase{
		collection: dbHelper.Collection(orderCollection),
	}
}

func (o *orderDatabase) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := o.collection.InsertOne(ctx, order)
	return err
}

func (o *orderDatabase) GetOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := o.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *orderDatabase) GetOrdersByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	cursor, err := o.collection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *orderDatabase) GetAllOrders(ctx context.Context, limit, page int) ([]models.Order, error) {
	opts := newMongoPaginate(limit, page).getPaginatedOpts().SetSort(bson.M{"createdAt": -1})
	cursor, err := o.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus persists the new status and returns the post-update
// order. A missing order surfaces as mongo.ErrNoDocuments rather than a
// null document.
func (o *orderDatabase) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	var order models.Order
	err := o.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
