package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type StudentUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	FirstName    string             `bson:"first_name" json:"first_name"`
	LastName     string             `bson:"last_name" json:"last_name"`
}

func (u StudentUser) FullName() string {
	return u.FirstName + " " + u.LastName
}
