package databases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/databases/mocks"
)

func TestSchedulerLockDatabase_TryAcquireLock_Acquired(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything,
		mock.AnythingOfType("*options.UpdateOptions")).Return(&mongo.UpdateResult{UpsertedCount: 1}, nil)
	dbHelper.On("Collection", "scheduler_locks").Return(collectionHelper)

	lockDB := databases.NewSchedulerLockDatabase(dbHelper)

	acquired, err := lockDB.TryAcquireLock(context.Background(), "daily_reminder_job", "instance-a", 10*time.Minute)

	assert.NoError(t, err)
	assert.True(t, acquired)
}

func TestSchedulerLockDatabase_TryAcquireLock_HeldByAnotherInstance(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	dupErr := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	collectionHelper.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything,
		mock.AnythingOfType("*options.UpdateOptions")).Return(nil, dupErr)
	dbHelper.On("Collection", "scheduler_locks").Return(collectionHelper)

	lockDB := databases.NewSchedulerLockDatabase(dbHelper)

	acquired, err := lockDB.TryAcquireLock(context.Background(), "daily_reminder_job", "instance-b", 10*time.Minute)

	assert.NoError(t, err)
	assert.False(t, acquired)
}

func TestSchedulerLockDatabase_ReleaseLock_OnlyDeletesOwnLock(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("DeleteOne", mock.Anything, mock.Anything).Return(int64(1), nil)
	dbHelper.On("Collection", "scheduler_locks").Return(collectionHelper)

	lockDB := databases.NewSchedulerLockDatabase(dbHelper)

	err := lockDB.ReleaseLock(context.Background(), "daily_reminder_job", "instance-a")

	assert.NoError(t, err)
	collectionHelper.AssertCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}
