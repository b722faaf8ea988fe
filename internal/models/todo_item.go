package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TodoItem shows up on the team to-do list when IsTeamItem is true,
// otherwise on the creator's personal list.
type TodoItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IsTeamItem   bool               `bson:"is_team_item" json:"is_team_item"`
	ItemName     string             `bson:"item_name" json:"item_name"`
	ItemComplete bool               `bson:"item_complete" json:"item_complete"`
	AssocUserID  primitive.ObjectID `bson:"assoc_user_id" json:"assoc_user_id"`
	AssocTeamID  primitive.ObjectID `bson:"assoc_team_id,omitempty" json:"assoc_team_id,omitempty"`
	Tag          string             `bson:"tag" json:"tag"`
}
