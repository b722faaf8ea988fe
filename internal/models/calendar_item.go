package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CalendarItem struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventName     string             `bson:"event_name" json:"event_name"`
	StartDateTime time.Time          `bson:"start_date_time" json:"start_date_time"`
	EndDateTime   time.Time          `bson:"end_date_time" json:"end_date_time"`
	AssocTeamID   primitive.ObjectID `bson:"assoc_team_id" json:"assoc_team_id"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
