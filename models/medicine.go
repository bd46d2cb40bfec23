package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medicine holds the structure for the medicine collection in mongo.
// Stock is never negative; it is decremented only through the take-dose
// operation, which uses an atomic conditional update.
type Medicine struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	Name            string             `json:"name" bson:"name"`
	Dosage          string             `json:"dosage" bson:"dosage"`                   // e.g. "500mg"
	Frequency       string             `json:"frequency" bson:"frequency"`             // e.g. "Twice a day"
	Times           []string           `json:"times" bson:"times"`                     // ordered "HH:MM" reminder times
	Stock           int                `json:"stock" bson:"stock"`
	RefillThreshold int                `json:"refillThreshold" bson:"refillThreshold"`
	LastRefilled    primitive.DateTime `json:"lastRefilled,omitempty" bson:"lastRefilled,omitempty"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt       primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// RefillNeeded reports whether the medicine is at or below its refill
// threshold. The flag is derived, never stored.
func (m Medicine) RefillNeeded() bool {
	return m.Stock <= m.RefillThreshold
}

// TakeDoseResponse is returned by the take-dose endpoint. OutOfStock and the
// OUT_OF_STOCK code are set when the take was a no-op because stock was
// already zero.
type TakeDoseResponse struct {
	Medicine   Medicine `json:"medicine"`
	OutOfStock bool     `json:"outOfStock"`
	Code       string   `json:"code,omitempty"`
}
