package store

import (
	"context"
	"errors"

	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CalendarStore struct {
	c *mongo.Collection
}

func (s *CalendarStore) Insert(ctx context.Context, item *models.CalendarItem) error {
	if item.EventName == "" {
		return apperrors.Validationf("event name cannot be empty")
	}

	if item.EndDateTime.Before(item.StartDateTime) {
		return apperrors.Validationf("event cannot end before it starts")
	}

	res, err := s.c.InsertOne(ctx, item)

	if err != nil {
		return err
	}

	item.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *CalendarStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.CalendarItem, error) {
	var item models.CalendarItem

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("calendar item %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *CalendarStore) ByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.CalendarItem, error) {
	cursor, err := s.c.Find(ctx, bson.M{"assoc_team_id": teamID},
		options.Find().SetSort(bson.D{{Key: "start_date_time", Value: 1}}))

	if err != nil {
		return nil, err
	}

	var items []models.CalendarItem

	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *CalendarStore) Replace(ctx context.Context, item *models.CalendarItem) error {
	if item.EventName == "" {
		return apperrors.Validationf("event name cannot be empty")
	}

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("calendar item %s", item.ID.Hex())
	}

	return nil
}

func (s *CalendarStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("calendar item %s", id.Hex())
	}

	return nil
}
