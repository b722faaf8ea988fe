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

type SprintBoardStore struct {
	c *mongo.Collection
}

func (s *SprintBoardStore) Insert(ctx context.Context, item *models.SprintBoardItem) error {
	if item.Description == "" {
		return apperrors.Validationf("description cannot be empty")
	}

	res, err := s.c.InsertOne(ctx, item)

	if err != nil {
		return err
	}

	item.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *SprintBoardStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.SprintBoardItem, error) {
	var item models.SprintBoardItem

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("sprint board item %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &item, nil
}

// ByProject lists retro items for a project, optionally filtered to a
// single sprint when sprintNumber is non-nil.
func (s *SprintBoardStore) ByProject(ctx context.Context, projectID primitive.ObjectID, sprintNumber *int) ([]models.SprintBoardItem, error) {
	filter := bson.M{"assoc_project_id": projectID}

	if sprintNumber != nil {
		filter["sprint_number"] = *sprintNumber
	}

	cursor, err := s.c.Find(ctx, filter)

	if err != nil {
		return nil, err
	}

	var items []models.SprintBoardItem

	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *SprintBoardStore) Update(ctx context.Context, id primitive.ObjectID, description string, sprintNumber int) error {
	if description == "" {
		return apperrors.Validationf("description cannot be empty")
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"description": description, "sprint_number": sprintNumber}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("sprint board item %s", id.Hex())
	}

	return nil
}

func (s *SprintBoardStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("sprint board item %s", id.Hex())
	}

	return nil
}

func (s *SprintBoardStore) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"assoc_project_id": projectID})

	return err
}
