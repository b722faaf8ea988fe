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

type RequirementStore struct {
	c *mongo.Collection
}

// Create validates and inserts a new requirement. Requirement numbers
// are unique within a project; duplicates are rejected before insert.
func (s *RequirementStore) Create(ctx context.Context, req *models.Requirement) error {
	if err := validateRequirement(req); err != nil {
		return err
	}

	if req.Number != nil {
		count, err := s.c.CountDocuments(ctx, bson.M{
			"assoc_project_id":   req.ProjectID,
			"requirement_number": *req.Number,
		})

		if err != nil {
			return err
		}

		if count > 0 {
			return apperrors.Conflictf("requirement number %d already exists in this project", *req.Number)
		}
	}

	if req.Assignees == nil {
		req.Assignees = []primitive.ObjectID{}
	}

	res, err := s.c.InsertOne(ctx, req)

	if err != nil {
		return err
	}

	req.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *RequirementStore) ByID(ctx context.Context, id primitive.ObjectID) (*models.Requirement, error) {
	var req models.Requirement

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&req)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("requirement %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &req, nil
}

func (s *RequirementStore) ByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Requirement, error) {
	return s.find(ctx, bson.M{"assoc_project_id": projectID})
}

func (s *RequirementStore) ByProjects(ctx context.Context, projectIDs []primitive.ObjectID) ([]models.Requirement, error) {
	return s.find(ctx, bson.M{"assoc_project_id": bson.M{"$in": projectIDs}})
}

func (s *RequirementStore) find(ctx context.Context, filter bson.M) ([]models.Requirement, error) {
	cursor, err := s.c.Find(ctx, filter)

	if err != nil {
		return nil, err
	}

	var reqs []models.Requirement

	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}

	return reqs, nil
}

// Update replaces the stored requirement after validating it and
// re-normalizing the completion/progress pair.
func (s *RequirementStore) Update(ctx context.Context, req *models.Requirement) error {
	if err := validateRequirement(req); err != nil {
		return err
	}

	if req.Number != nil {
		count, err := s.c.CountDocuments(ctx, bson.M{
			"assoc_project_id":   req.ProjectID,
			"requirement_number": *req.Number,
			"_id":                bson.M{"$ne": req.ID},
		})

		if err != nil {
			return err
		}

		if count > 0 {
			return apperrors.Conflictf("requirement number %d already exists in this project", *req.Number)
		}
	}

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("requirement %s", req.ID.Hex())
	}

	return nil
}

// ToggleComplete flips the completion flag, applying the completion
// rules (sprint required to complete, progress pinned to 100 while
// complete, reset to 0 on un-complete only from exactly 100).
func (s *RequirementStore) ToggleComplete(ctx context.Context, id primitive.ObjectID) (*models.Requirement, error) {
	req, err := s.ByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if err := applyToggle(req); err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"is_complete": req.IsComplete,
		"progress":    req.Progress,
	}}

	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *RequirementStore) AddAssignee(ctx context.Context, id, studentID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"assignees": studentID}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("requirement %s", id.Hex())
	}

	return nil
}

func (s *RequirementStore) RemoveAssignee(ctx context.Context, id, studentID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$pull": bson.M{"assignees": studentID}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("requirement %s", id.Hex())
	}

	return nil
}

// PullAssignee removes a student from the assignee lists of all the
// given requirements in a single bulk write.
func (s *RequirementStore) PullAssignee(ctx context.Context, ids []primitive.ObjectID, studentID primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(ids))

	for _, id := range ids {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$pull": bson.M{"assignees": studentID}}))
	}

	_, err := s.c.BulkWrite(ctx, writes)

	return err
}

func (s *RequirementStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})

	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return apperrors.NotFoundf("requirement %s", id.Hex())
	}

	return nil
}

func (s *RequirementStore) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"assoc_project_id": projectID})

	return err
}
