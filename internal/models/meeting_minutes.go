package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MeetingMinutes struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Notes          string             `bson:"notes" json:"notes"`
	AssocMeetingID primitive.ObjectID `bson:"assoc_meeting_id" json:"assoc_meeting_id"`
}
