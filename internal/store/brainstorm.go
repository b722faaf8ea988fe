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

type BrainstormStore struct {
	c *mongo.Collection
}

func (s *BrainstormStore) Insert(ctx context.Context, item *models.BrainstormItem) error {
	if item.Description == "" {
		return apperrors.Validationf("description cannot be empty")
	}

	if item.Upvotes == nil {
		item.Upvotes = []primitive.ObjectID{}
	}

	if item.Downvotes == nil {
		item.Downvotes = []primitive.ObjectID{}
	}

	res, err := s.c.InsertOne(ctx, item)

	if err != nil {
		return err
	}

	item.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *BrainstormStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.BrainstormItem, error) {
	var item models.BrainstormItem

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("brainstorm item %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *BrainstormStore) ByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.BrainstormItem, error) {
	cursor, err := s.c.Find(ctx, bson.M{"assoc_project_id": projectID})

	if err != nil {
		return nil, err
	}

	var items []models.BrainstormItem

	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *BrainstormStore) SetDescription(ctx context.Context, id primitive.ObjectID, description string) error {
	if description == "" {
		return apperrors.Validationf("description cannot be empty")
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"description": description}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("brainstorm item %s", id.Hex())
	}

	return nil
}

// Upvote registers an upvote, clearing any downvote by the same student.
// Both edits ride a single atomic update.
func (s *BrainstormStore) Upvote(ctx context.Context, id, studentID primitive.ObjectID) error {
	return s.vote(ctx, id, "upvotes", "downvotes", studentID)
}

func (s *BrainstormStore) Downvote(ctx context.Context, id, studentID primitive.ObjectID) error {
	return s.vote(ctx, id, "downvotes", "upvotes", studentID)
}

func (s *BrainstormStore) vote(ctx context.Context, id primitive.ObjectID, add, remove string, studentID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$addToSet": bson.M{add: studentID},
		"$pull":     bson.M{remove: studentID},
	})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("brainstorm item %s", id.Hex())
	}

	return nil
}

func (s *BrainstormStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("brainstorm item %s", id.Hex())
	}

	return nil
}

func (s *BrainstormStore) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"assoc_project_id": projectID})

	return err
}
