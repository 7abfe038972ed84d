// Package contact defines the contact entity in both its persisted and
// external shapes.
package contact

import "go.mongodb.org/mongo-driver/bson/primitive"

// Record is the persisted shape of a contact. Country and Timezone are
// derived from the phone validation service, never taken from the client.
type Record struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Telefono string             `bson:"telefono"`
	Country  string             `bson:"country"`
	Timezone []string           `bson:"timezone"`
}

// Contact is the external API shape: the record with a stringified id.
type Contact struct {
	Name     string   `json:"name"`
	Telefono string   `json:"telefono"`
	Country  string   `json:"country"`
	Timezone []string `json:"timezone"`
	ID       string   `json:"id"`
}

// FromRecord maps a persisted record to the external shape. Both list and
// get-one go through this mapping so the two never diverge.
func FromRecord(rec Record) Contact {
	return Contact{
		Name:     rec.Name,
		Telefono: rec.Telefono,
		Country:  rec.Country,
		Timezone: rec.Timezone,
		ID:       rec.ID.Hex(),
	}
}
