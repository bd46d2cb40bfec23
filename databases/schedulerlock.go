package databases

// go generate: mockery --name SchedulerLockDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const schedulerLockCollection = "scheduler_locks"

// SchedulerLockDatabase provides a coarse distributed lock so scheduled jobs
// run on exactly one instance even when several pods carry the scheduler.
type SchedulerLockDatabase interface {
	TryAcquireLock(ctx context.Context, name, instanceID string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, name, instanceID string) error
}

type schedulerLockDatabase struct {
	collection CollectionHelper
}

// NewSchedulerLockDatabase creates a new scheduler lock database instance
func NewSchedulerLockDatabase(dbHelper DatabaseHelper) SchedulerLockDatabase {
	return &schedulerLockDatabase{
		collection: dbHelper.Collection(schedulerLockCollection),
	}
}

// TryAcquireLock claims the named lock for instanceID. The lock document is
// keyed by name, so the upsert either refreshes an expired lock or fails
// with a duplicate key when another instance still holds it.
func (s *schedulerLockDatabase) TryAcquireLock(ctx context.Context, name, instanceID string, ttl time.Duration) (bool, error) {
	now := time.Now()
	filter := bson.M{
		"_id":       name,
		"expiresAt": bson.M{"$lt": now},
	}
	update := bson.M{
		"$set": bson.M{
			"holder":     instanceID,
			"acquiredAt": now,
			"expiresAt":  now.Add(ttl),
		},
	}

	res, err := s.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return res.MatchedCount > 0 || res.UpsertedCount > 0, nil
}

// ReleaseLock frees the named lock if this instance holds it
func (s *schedulerLockDatabase) ReleaseLock(ctx context.Context, name, instanceID string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": name, "holder": instanceID})
	return err
}
