package store

import (
	"context"

	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityStore struct {
	c *mongo.Collection
}

func (s *AvailabilityStore) Insert(ctx context.Context, slot *models.UserAvailability) error {
	if slot.Day == "" || slot.Time == "" {
		return apperrors.Validationf("day and time are required")
	}

	res, err := s.c.InsertOne(ctx, slot)

	if err != nil {
		return err
	}

	slot.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *AvailabilityStore) ByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.UserAvailability, error) {
	cursor, err := s.c.Find(ctx, bson.M{"assoc_team_id": teamID})

	if err != nil {
		return nil, err
	}

	var slots []models.UserAvailability

	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

func (s *AvailabilityStore) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "assoc_user_id": userID})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("availability %s", id.Hex())
	}

	return nil
}
