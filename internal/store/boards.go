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

type BoardStore struct {
	c *mongo.Collection
}

func (s *BoardStore) Insert(ctx context.Context, board *models.DiscussionBoard) error {
	res, err := s.c.InsertOne(ctx, board)

	if err != nil {
		return err
	}

	board.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *BoardStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.DiscussionBoard, error) {
	var board models.DiscussionBoard

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&board)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("board %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &board, nil
}

func (s *BoardStore) ByClassIDs(ctx context.Context, classIDs []primitive.ObjectID) ([]models.DiscussionBoard, error) {
	return s.find(ctx, bson.M{"class_id": bson.M{"$in": classIDs}, "is_class_board": true})
}

func (s *BoardStore) ByTeamIDs(ctx context.Context, teamIDs []primitive.ObjectID) ([]models.DiscussionBoard, error) {
	return s.find(ctx, bson.M{"team_id": bson.M{"$in": teamIDs}, "is_class_board": false})
}

func (s *BoardStore) find(ctx context.Context, filter bson.M) ([]models.DiscussionBoard, error) {
	cursor, err := s.c.Find(ctx, filter)

	if err != nil {
		return nil, err
	}

	var boards []models.DiscussionBoard

	if err := cursor.All(ctx, &boards); err != nil {
		return nil, err
	}

	return boards, nil
}
