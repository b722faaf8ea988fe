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

type ProjectStore struct {
	c *mongo.Collection
}

func (s *ProjectStore) Insert(ctx context.Context, project *models.Project) error {
	res, err := s.c.InsertOne(ctx, project)

	if err != nil {
		return err
	}

	project.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *ProjectStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&project)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("project %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *ProjectStore) ByNameAndTeam(ctx context.Context, name string, teamID primitive.ObjectID) (*models.Project, error) {
	var project models.Project

	err := s.c.FindOne(ctx, bson.M{"name": name, "associated_team": teamID}).Decode(&project)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("project %q", name)
	}

	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *ProjectStore) ByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.Project, error) {
	cursor, err := s.c.Find(ctx, bson.M{"associated_team": teamID})

	if err != nil {
		return nil, err
	}

	var projects []models.Project

	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (s *ProjectStore) SetName(ctx context.Context, id primitive.ObjectID, name string) error {
	return s.setField(ctx, id, "name", name)
}

func (s *ProjectStore) SetDescription(ctx context.Context, id primitive.ObjectID, description string) error {
	return s.setField(ctx, id, "description", description)
}

func (s *ProjectStore) setField(ctx context.Context, id primitive.ObjectID, field string, value string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("project %s", id.Hex())
	}

	return nil
}

func (s *ProjectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("project %s", id.Hex())
	}

	return nil
}
