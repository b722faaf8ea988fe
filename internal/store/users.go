package store

import (
	"context"
	"errors"

	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	c *mongo.Collection
}

func (s *UserStore) Insert(ctx context.Context, user *models.StudentUser) error {
	res, err := s.c.InsertOne(ctx, user)

	if err != nil {
		return err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *UserStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.StudentUser, error) {
	var user models.StudentUser

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("user %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.StudentUser, error) {
	var user models.StudentUser

	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("user %s", email)
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.StudentUser, error) {
	cursor, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})

	if err != nil {
		return nil, err
	}

	var users []models.StudentUser

	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *UserStore) UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"email": email}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("user %s", id.Hex())
	}

	return nil
}
