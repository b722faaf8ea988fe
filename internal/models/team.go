package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Team struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name string `bson:"name" json:"name"`

	// Class the team belongs to. A student may be on at most one team
	// per class; that rule lives in services.Reconciler, not here.
	AssociatedClass primitive.ObjectID `bson:"associated_class" json:"associated_class"`

	Members []primitive.ObjectID `bson:"members" json:"members"`
}

func (t Team) HasMember(studentID primitive.ObjectID) bool {
	for _, id := range t.Members {
		if id == studentID {
			return true
		}
	}

	return false
}
