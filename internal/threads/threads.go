// Package threads implements the discussion thread operations: nested
// reply resolution, reply creation, and cascading deletion.
package threads

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the post persistence surface the engine needs. PostStore in
// internal/store satisfies it; tests use an in-memory fake.
type Store interface {
	Insert(ctx context.Context, post *models.DiscussionPost) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.DiscussionPost, error)
	ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.DiscussionPost, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteThread(ctx context.Context, headID primitive.ObjectID) error
	PushReply(ctx context.Context, parentID, replyID primitive.ObjectID) error
	PullReply(ctx context.Context, parentID, replyID primitive.ObjectID) error
}

type Engine struct {
	posts Store
}

func NewEngine(posts Store) *Engine {
	return &Engine{posts: posts}
}

// Reply pairs a post with its resolved children, so a whole thread can
// be returned without flattening the tree. The post's own ReplyIDs
// field keeps ids only.
type Reply struct {
	models.DiscussionPost
	Children []Reply `json:"children"`
}

// Replies resolves a list of reply ids into full posts, depth first.
// Each level is fetched in a single batch and ordered chronologically;
// ordering across levels is not defined beyond that. Empty input
// resolves to an empty slice.
func (e *Engine) Replies(ctx context.Context, replyIDs []primitive.ObjectID) ([]Reply, error) {
	seen := make(map[primitive.ObjectID]bool)

	return e.resolve(ctx, replyIDs, seen)
}

func (e *Engine) resolve(ctx context.Context, replyIDs []primitive.ObjectID, seen map[primitive.ObjectID]bool) ([]Reply, error) {
	if len(replyIDs) == 0 {
		return []Reply{}, nil
	}

	// A well-formed tree never revisits a post; guard against a cyclic
	// reply graph so corrupt data cannot recurse forever.
	fresh := make([]primitive.ObjectID, 0, len(replyIDs))

	for _, id := range replyIDs {
		if !seen[id] {
			seen[id] = true
			fresh = append(fresh, id)
		}
	}

	if len(fresh) == 0 {
		return []Reply{}, nil
	}

	posts, err := e.posts.ByIDs(ctx, fresh)

	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.Before(posts[j].Timestamp)
	})

	replies := make([]Reply, 0, len(posts))

	for _, post := range posts {
		children, err := e.resolve(ctx, post.ReplyIDs, seen)

		if err != nil {
			return nil, err
		}

		replies = append(replies, Reply{DiscussionPost: post, Children: children})
	}

	return replies, nil
}

// CreateHead starts a new thread on a board.
func (e *Engine) CreateHead(ctx context.Context, boardID, authorID primitive.ObjectID, title, content string) (*models.DiscussionPost, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.Validationf("post title cannot be empty")
	}

	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validationf("post content cannot be empty")
	}

	post := &models.DiscussionPost{
		BoardID:   boardID,
		CreatedBy: authorID,
		Title:     title,
		Content:   content,
		Timestamp: time.Now().UTC(),
		IsReply:   false,
		ReplyIDs:  []primitive.ObjectID{},
	}

	if err := e.posts.Insert(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// CreateReply inserts a reply under parentID and appends its id to the
// parent's child list. The parent reference is recorded on the reply at
// write time, so deletion never needs a reverse lookup.
func (e *Engine) CreateReply(ctx context.Context, parentID, headPostID, authorID primitive.ObjectID, content string) (*models.DiscussionPost, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validationf("reply content cannot be empty")
	}

	parent, err := e.posts.Get(ctx, parentID)

	if err != nil {
		return nil, err
	}

	head, err := e.posts.Get(ctx, headPostID)

	if err != nil {
		return nil, err
	}

	if parent.ID != head.ID && parent.HeadPostID != head.ID {
		return nil, apperrors.Validationf("parent post does not belong to this thread")
	}

	reply := &models.DiscussionPost{
		BoardID:    head.BoardID,
		CreatedBy:  authorID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		HeadPostID: head.ID,
		ParentID:   parent.ID,
		IsReply:    true,
		ReplyIDs:   []primitive.ObjectID{},
	}

	if err := e.posts.Insert(ctx, reply); err != nil {
		return nil, err
	}

	if err := e.posts.PushReply(ctx, parent.ID, reply.ID); err != nil {
		return nil, err
	}

	return reply, nil
}

// Delete removes a post and its whole reply subtree. Only the author
// may delete a post. A head post takes the bulk-delete shortcut over
// the stored head reference; a reply is removed depth first and then
// unlinked from its parent's child list. The deleted post is returned
// so callers can decide where to send the user next.
func (e *Engine) Delete(ctx context.Context, postID, actorID primitive.ObjectID) (*models.DiscussionPost, error) {
	post, err := e.posts.Get(ctx, postID)

	if err != nil {
		return nil, err
	}

	if post.CreatedBy != actorID {
		return nil, apperrors.Forbiddenf("only the author may delete a post")
	}

	if !post.IsReply {
		if err := e.posts.DeleteThread(ctx, post.ID); err != nil {
			return nil, err
		}

		return post, nil
	}

	if err := e.deleteSubtree(ctx, post, map[primitive.ObjectID]bool{post.ID: true}); err != nil {
		return nil, err
	}

	if err := e.posts.PullReply(ctx, post.ParentID, post.ID); err != nil {
		return nil, err
	}

	return post, nil
}

func (e *Engine) deleteSubtree(ctx context.Context, post *models.DiscussionPost, seen map[primitive.ObjectID]bool) error {
	for _, childID := range post.ReplyIDs {
		if seen[childID] {
			continue
		}

		seen[childID] = true

		child, err := e.posts.Get(ctx, childID)

		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}

			return err
		}

		if err := e.deleteSubtree(ctx, child, seen); err != nil {
			return err
		}
	}

	return e.posts.Delete(ctx, post.ID)
}
