package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles assignable to a user. The role is fixed at registration.
const (
	RolePatient    = "Patient"
	RolePharmacist = "Pharmacist"
	RoleDelivery   = "Delivery"
)

// ValidRole reports whether role is one of the three supported roles
func ValidRole(role string) bool {
	switch role {
	case RolePatient, RolePharmacist, RoleDelivery:
		return true
	}
	return false
}

// User holds the structure for the user collection in mongo
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// Session identifies the authenticated caller for the duration of one
// request. It is built by the auth middleware from the bearer token claims
// and threaded through the request context so handlers never consult
// ambient state.
type Session struct {
	UserID string
	Email  string
	Role   string
}
