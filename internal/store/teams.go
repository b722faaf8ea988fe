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

type TeamStore struct {
	c *mongo.Collection
}

func (s *TeamStore) Insert(ctx context.Context, team *models.Team) error {
	if team.Members == nil {
		team.Members = []primitive.ObjectID{}
	}

	res, err := s.c.InsertOne(ctx, team)

	if err != nil {
		return err
	}

	team.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *TeamStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&team)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("team %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &team, nil
}

func (s *TeamStore) ByNameAndClass(ctx context.Context, name string, classID primitive.ObjectID) (*models.Team, error) {
	var team models.Team

	err := s.c.FindOne(ctx, bson.M{"name": name, "associated_class": classID}).Decode(&team)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("team %q", name)
	}

	if err != nil {
		return nil, err
	}

	return &team, nil
}

func (s *TeamStore) ByClass(ctx context.Context, classID primitive.ObjectID) ([]models.Team, error) {
	cursor, err := s.c.Find(ctx, bson.M{"associated_class": classID})

	if err != nil {
		return nil, err
	}

	var teams []models.Team

	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	return teams, nil
}

func (s *TeamStore) ForStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Team, error) {
	cursor, err := s.c.Find(ctx, bson.M{"members": studentID})

	if err != nil {
		return nil, err
	}

	var teams []models.Team

	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	return teams, nil
}

func (s *TeamStore) All(ctx context.Context) ([]models.Team, error) {
	cursor, err := s.c.Find(ctx, bson.M{})

	if err != nil {
		return nil, err
	}

	var teams []models.Team

	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}

	return teams, nil
}

func (s *TeamStore) AddMember(ctx context.Context, teamID, studentID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": teamID},
		bson.M{"$addToSet": bson.M{"members": studentID}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("team %s", teamID.Hex())
	}

	return nil
}

func (s *TeamStore) RemoveMember(ctx context.Context, teamID, studentID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": teamID},
		bson.M{"$pull": bson.M{"members": studentID}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("team %s", teamID.Hex())
	}

	return nil
}
