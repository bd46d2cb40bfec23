package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pharmassist/pharmassist-api/models"
)

const userCollection = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]models.User, error)
}

type userDatabase struct {
	collection CollectionHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(dbHelper DatabaseHelper) UserDatabase {
	return &userDatabase{
		collection: dbHelper.Collection(userCollection),
	}
}

func (u *userDatabase) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := u.collection.InsertOne(ctx, user)
	return err
}

func (u *userDatabase) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := u.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userDatabase) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userDatabase) GetUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	cursor, err := u.collection.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
