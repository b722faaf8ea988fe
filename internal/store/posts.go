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

// PostStore is the MongoDB backend for the thread engine
// (threads.Engine wraps it with the recursion and cascade logic).
type PostStore struct {
	c *mongo.Collection
}

func (s *PostStore) Insert(ctx context.Context, post *models.DiscussionPost) error {
	if post.ReplyIDs == nil {
		post.ReplyIDs = []primitive.ObjectID{}
	}

	res, err := s.c.InsertOne(ctx, post)

	if err != nil {
		return err
	}

	post.ID = res.InsertedID.(primitive.ObjectID)

	return nil
}

func (s *PostStore) Get(ctx context.Context, id primitive.ObjectID) (*models.DiscussionPost, error) {
	var post models.DiscussionPost

	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&post)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFoundf("post %s", id.Hex())
	}

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// ByIDs fetches the given posts in one round trip, ordered by creation
// time ascending.
func (s *PostStore) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.DiscussionPost, error) {
	cursor, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))

	if err != nil {
		return nil, err
	}

	var posts []models.DiscussionPost

	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// HeadsByBoard lists the head posts of a board, newest first.
func (s *PostStore) HeadsByBoard(ctx context.Context, boardID primitive.ObjectID) ([]models.DiscussionPost, error) {
	cursor, err := s.c.Find(ctx, bson.M{"board_id": boardID, "is_reply": false},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))

	if err != nil {
		return nil, err
	}

	var posts []models.DiscussionPost

	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *PostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})

	return err
}

// DeleteThread removes a head post and every reply in its thread in a
// single bulk delete, using the head-post reference shortcut instead of
// walking the tree.
func (s *PostStore) DeleteThread(ctx context.Context, headID primitive.ObjectID) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"$or": []bson.M{
		{"_id": headID},
		{"head_post_id": headID},
	}})

	return err
}

// PushReply atomically appends a reply id to a parent's child list.
func (s *PostStore) PushReply(ctx context.Context, parentID, replyID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": parentID},
		bson.M{"$push": bson.M{"reply_ids": replyID}})

	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("post %s", parentID.Hex())
	}

	return nil
}

// PullReply atomically removes a reply id from a parent's child list.
func (s *PostStore) PullReply(ctx context.Context, parentID, replyID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": parentID},
		bson.M{"$pull": bson.M{"reply_ids": replyID}})

	return err
}
