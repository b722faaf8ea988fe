package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Class struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name             string               `bson:"name" json:"name"`
	EnrolledStudents []primitive.ObjectID `bson:"enrolled_students" json:"enrolled_students"`
}
