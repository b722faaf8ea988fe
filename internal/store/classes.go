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

type ClassStore struct {
	c *mongo.Collection
}

func (s *ClassStore) Insert(ctx context.Context, class *models.Class) error {
	if class.EnrolledStudents == nil {
		class.EnrolledStudents = []primitive.ObjectID{}
	}

	res, err := s.c.InsertOne(ctx, class)

	if err != nil {
		return err
	}

	class.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *ClassStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var class models.Class

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&class)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("class %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (s *ClassStore) ByName(ctx context.Context, name string) (*models.Class, error) {
	var class models.Class

	err := s.c.FindOne(ctx, bson.M{"name": name}).Decode(&class)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("class %q", name)
	}

	if err != nil {
		return nil, err
	}

	return &class, nil
}

func (s *ClassStore) All(ctx context.Context) ([]models.Class, error) {
	cursor, err := s.c.Find(ctx, bson.M{})

	if err != nil {
		return nil, err
	}

	var classes []models.Class

	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}

	return classes, nil
}

func (s *ClassStore) ForStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Class, error) {
	cursor, err := s.c.Find(ctx, bson.M{"enrolled_students": studentID})

	if err != nil {
		return nil, err
	}

	var classes []models.Class

	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}

	return classes, nil
}

func (s *ClassStore) AddStudent(ctx context.Context, classID, studentID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": classID},
		bson.M{"$addToSet": bson.M{"enrolled_students": studentID}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("class %s", classID.Hex())
	}

	return nil
}

func (s *ClassStore) RemoveStudent(ctx context.Context, classID, studentID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": classID},
		bson.M{"$pull": bson.M{"enrolled_students": studentID}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("class %s", classID.Hex())
	}

	return nil
}

// NamesByIDs resolves class ids to display names in a single query.
func (s *ClassStore) NamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	cursor, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})

	if err != nil {
		return nil, err
	}

	var classes []models.Class

	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(classes))

	for _, class := range classes {
		names[class.ID] = class.Name
	}

	return names, nil
}
