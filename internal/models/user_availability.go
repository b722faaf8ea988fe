package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserAvailability marks a half-hour slot a student cannot meet,
// keyed by day name and display time (e.g. "Mon" / "9:30 AM").
type UserAvailability struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Day         string             `bson:"day" json:"day"`
	Time        string             `bson:"time" json:"time"`
	AssocUserID primitive.ObjectID `bson:"assoc_user_id" json:"assoc_user_id"`
	AssocTeamID primitive.ObjectID `bson:"assoc_team_id" json:"assoc_team_id"`
}
