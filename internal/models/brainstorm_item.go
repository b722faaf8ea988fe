package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type BrainstormItem struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Description string               `bson:"description" json:"description"`
	CreatedBy   primitive.ObjectID   `bson:"created_by" json:"created_by"`
	Upvotes     []primitive.ObjectID `bson:"upvotes" json:"upvotes"`
	Downvotes   []primitive.ObjectID `bson:"downvotes" json:"downvotes"`
	ProjectID   primitive.ObjectID   `bson:"assoc_project_id" json:"assoc_project_id"`
}
