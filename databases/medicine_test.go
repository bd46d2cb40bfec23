package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/databases/mocks"
	"github.com/pharmassist/pharmassist-api/models"
)

func TestMedicineDatabase_TakeDose_DecrementsStockByOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	id := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	filter := bson.M{"_id": id, "userId": userID, "stock": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"stock": -1}}

	srHelper.On("Decode", mock.AnythingOfType("*models.Medicine")).Return(func(v interface{}) error {
		med := v.(*models.Medicine)
		med.ID = id
		med.UserID = userID
		med.Name = "Paracetamol"
		med.Stock = 9
		return nil
	})
	collectionHelper.On("FindOneAndUpdate", mock.Anything, filter, update,
		mock.AnythingOfType("*options.FindOneAndUpdateOptions")).Return(srHelper)
	dbHelper.On("Collection", "medicines").Return(collectionHelper)

	medDB := databases.NewMedicineDatabase(dbHelper)

	medicine, err := medDB.TakeDose(context.Background(), id, userID)

	assert.NoError(t, err)
	assert.Equal(t, 9, medicine.Stock)
	assert.Equal(t, "Paracetamol", medicine.Name)
}

func TestMedicineDatabase_TakeDose_NoMatchWhenStockExhausted(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.AnythingOfType("*models.Medicine")).Return(mongo.ErrNoDocuments)
	collectionHelper.On("FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything,
		mock.AnythingOfType("*options.FindOneAndUpdateOptions")).Return(srHelper)
	dbHelper.On("Collection", "medicines").Return(collectionHelper)

	medDB := databases.NewMedicineDatabase(dbHelper)

	medicine, err := medDB.TakeDose(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())

	assert.Nil(t, medicine)
	assert.Equal(t, mongo.ErrNoDocuments, err)
}

func TestMedicineDatabase_GetMedicinesByUserID(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	userID := primitive.NewObjectID()

	cursorHelper.On("All", mock.Anything, mock.AnythingOfType("*[]models.Medicine")).Return(func(ctx context.Context, results interface{}) error {
		meds := results.(*[]models.Medicine)
		*meds = []models.Medicine{
			{UserID: userID, Name: "Amoxicillin", Stock: 12},
			{UserID: userID, Name: "Metformin", Stock: 3},
		}
		return nil
	})
	cursorHelper.On("Close", mock.Anything).Return(nil)
	collectionHelper.On("Find", mock.Anything, bson.M{"userId": userID}).Return(cursorHelper, nil)
	dbHelper.On("Collection", "medicines").Return(collectionHelper)

	medDB := databases.NewMedicineDatabase(dbHelper)

	medicines, err := medDB.GetMedicinesByUserID(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, medicines, 2)
	assert.Equal(t, "Amoxicillin", medicines[0].Name)
}

func TestMedicineDatabase_GetMedicinesDueAt(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("All", mock.Anything, mock.AnythingOfType("*[]models.Medicine")).Return(func(ctx context.Context, results interface{}) error {
		meds := results.(*[]models.Medicine)
		*meds = []models.Medicine{{Name: "Paracetamol", Times: []string{"08:00", "20:00"}}}
		return nil
	})
	cursorHelper.On("Close", mock.Anything).Return(nil)
	collectionHelper.On("Find", mock.Anything, bson.M{"times": "08:00"}).Return(cursorHelper, nil)
	dbHelper.On("Collection", "medicines").Return(collectionHelper)

	medDB := databases.NewMedicineDatabase(dbHelper)

	medicines, err := medDB.GetMedicinesDueAt(context.Background(), "08:00")

	assert.NoError(t, err)
	assert.Len(t, medicines, 1)
	assert.Contains(t, medicines[0].Times, "08:00")
}

func TestMedicineDatabase_CreateMedicine_AssignsID(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("InsertOne", mock.Anything, mock.AnythingOfType("*models.Medicine")).Return(primitive.NewObjectID(), nil)
	dbHelper.On("Collection", "medicines").Return(collectionHelper)

	medDB := databases.NewMedicineDatabase(dbHelper)

	medicine := &models.Medicine{
		UserID: primitive.NewObjectID(),
		Name:   "Aspirin",
		Stock:  30,
	}
	err := medDB.CreateMedicine(context.Background(), medicine)

	assert.NoError(t, err)
	assert.False(t, medicine.ID.IsZero())
	assert.NotZero(t, medicine.CreatedAt)
}

func TestMedicineDatabase_DeleteMedicine(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	id := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	collectionHelper.On("DeleteOne", mock.Anything, bson.M{"_id": id, "userId": userID}).Return(int64(1), nil)
	dbHelper.On("Collection", "medicines").Return(collectionHelper)

	medDB := databases.NewMedicineDatabase(dbHelper)

	deleted, err := medDB.DeleteMedicine(context.Background(), id, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
