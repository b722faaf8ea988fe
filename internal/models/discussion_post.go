package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscussionPost is a single message in a discussion thread.
//
// A head post has IsReply false, a title, and zero HeadPostID/ParentID.
// A reply records both the thread root (HeadPostID) and its immediate
// parent (ParentID), which may be the head post or another reply.
// ReplyIDs holds the ids of direct children, appended in creation order.
type DiscussionPost struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	BoardID    primitive.ObjectID   `bson:"board_id" json:"board_id"`
	CreatedBy  primitive.ObjectID   `bson:"created_by" json:"created_by"`
	Title      string               `bson:"title,omitempty" json:"title,omitempty"`
	Content    string               `bson:"content" json:"content"`
	Timestamp  time.Time            `bson:"timestamp" json:"timestamp"`
	HeadPostID primitive.ObjectID   `bson:"head_post_id,omitempty" json:"head_post_id,omitempty"`
	ParentID   primitive.ObjectID   `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	IsReply    bool                 `bson:"is_reply" json:"is_reply"`
	ReplyIDs   []primitive.ObjectID `bson:"reply_ids" json:"reply_ids"`
}
