package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line item of a refill order
type OrderItem struct {
	Name     string `json:"name" bson:"name"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Order holds the structure for the order collection in mongo. Orders are
// created by patients; status is mutated only by pharmacists.
type Order struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Medicines []OrderItem        `json:"medicines" bson:"medicines"`
	Status    string             `json:"status" bson:"status"`
	Type      string             `json:"type" bson:"type"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
