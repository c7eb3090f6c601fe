package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// SearchTerm holds one document per distinct term; Freq counts occurrences.
type SearchTerm struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Data string             `bson:"data" json:"data"`
	Freq int64              `bson:"freq" json:"freq"`
}
