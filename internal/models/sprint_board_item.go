package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SprintBoardItem is a sprint retrospective note. Category is one of
// "WentWell", "WentPoorly" or "ActionItem".
type SprintBoardItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category     string             `bson:"category" json:"category"`
	Description  string             `bson:"description" json:"description"`
	SprintNumber int                `bson:"sprint_number" json:"sprint_number"`
	CreatedBy    primitive.ObjectID `bson:"created_by" json:"created_by"`
	ProjectID    primitive.ObjectID `bson:"assoc_project_id" json:"assoc_project_id"`
}
