package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerLocation is the drop-off point of a delivery task
type CustomerLocation struct {
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
	Address string  `json:"address" bson:"address"`
}

// PharmacyLocation is the pick-up point of a delivery task
type PharmacyLocation struct {
	Lat  float64 `json:"lat" bson:"lat"`
	Lng  float64 `json:"lng" bson:"lng"`
	Name string  `json:"name" bson:"name"`
}

// Delivery holds the structure for the delivery collection in mongo. One
// Delivery is created per dispatch event and is mutated only by its
// assigned agent.
type Delivery struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OrderID          primitive.ObjectID `json:"orderId" bson:"orderId"`
	AgentID          primitive.ObjectID `json:"agentId" bson:"agentId"`
	CustomerLocation CustomerLocation   `json:"customerLocation" bson:"customerLocation"`
	PharmacyLocation PharmacyLocation   `json:"pharmacyLocation" bson:"pharmacyLocation"`
	Status           string             `json:"status" bson:"status"`
	Distance         string             `json:"distance" bson:"distance"`
	EstimatedTime    string             `json:"estimatedTime" bson:"estimatedTime"`
	Earnings         float64            `json:"earnings" bson:"earnings"`
	CreatedAt        primitive.DateTime `json:"createdAt" bson:"createdAt"`
}
