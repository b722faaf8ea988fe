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

type MinutesStore struct {
	c *mongo.Collection
}

// GetOrCreate returns the minutes document for a meeting, creating an
// empty one on first access.
func (s *MinutesStore) GetOrCreate(ctx context.Context, meetingID primitive.ObjectID) (*models.MeetingMinutes, error) {
	var minutes models.MeetingMinutes

	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"assoc_meeting_id": meetingID},
		bson.M{"$setOnInsert": bson.M{"notes": "", "assoc_meeting_id": meetingID}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&minutes)

	if err != nil {
		return nil, err
	}

	return &minutes, nil
}

func (s *MinutesStore) ByMeeting(ctx context.Context, meetingID primitive.ObjectID) (*models.MeetingMinutes, error) {
	var minutes models.MeetingMinutes

	err := s.c.FindOne(ctx, bson.M{"assoc_meeting_id": meetingID}).Decode(&minutes)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("minutes for meeting %s", meetingID.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &minutes, nil
}

func (s *MinutesStore) SetNotes(ctx context.Context, meetingID primitive.ObjectID, notes string) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"assoc_meeting_id": meetingID},
		bson.M{"$set": bson.M{"notes": notes}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("minutes for meeting %s", meetingID.Hex())
	}

	return nil
}
