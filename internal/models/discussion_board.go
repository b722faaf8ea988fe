package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DiscussionBoard belongs to either a class or a team, never both.
// The unused reference stays at its zero value.
type DiscussionBoard struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IsClassBoard bool               `bson:"is_class_board" json:"is_class_board"`
	ClassID      primitive.ObjectID `bson:"class_id,omitempty" json:"class_id,omitempty"`
	TeamID       primitive.ObjectID `bson:"team_id,omitempty" json:"team_id,omitempty"`
}
