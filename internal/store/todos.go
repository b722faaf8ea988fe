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

type TodoStore struct {
	c *mongo.Collection
}

func (s *TodoStore) Insert(ctx context.Context, item *models.TodoItem) error {
	if item.ItemName == "" {
		return apperrors.Validationf("todo name cannot be empty")
	}

	if item.Tag == "" {
		item.Tag = "No tag"
	}

	res, err := s.c.InsertOne(ctx, item)

	if err != nil {
		return err
	}

	item.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *TodoStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.TodoItem, error) {
	var item models.TodoItem

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("todo %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *TodoStore) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.TodoItem, error) {
	return s.find(ctx, bson.M{"assoc_user_id": userID})
}

func (s *TodoStore) ByTeams(ctx context.Context, teamIDs []primitive.ObjectID) ([]models.TodoItem, error) {
	return s.find(ctx, bson.M{"assoc_team_id": bson.M{"$in": teamIDs}, "is_team_item": true})
}

func (s *TodoStore) find(ctx context.Context, filter bson.M) ([]models.TodoItem, error) {
	cursor, err := s.c.Find(ctx, filter)

	if err != nil {
		return nil, err
	}

	var items []models.TodoItem

	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *TodoStore) SetComplete(ctx context.Context, id primitive.ObjectID, complete bool) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"item_complete": complete}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("todo %s", id.Hex())
	}

	return nil
}

func (s *TodoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("todo %s", id.Hex())
	}

	return nil
}
