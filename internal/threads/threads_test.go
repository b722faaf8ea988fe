package threads

import (
	"context"
	"testing"
	"time"

	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore keeps posts in memory and hands out copies, the way a real
// database round trip would.
type fakeStore struct {
	posts map[primitive.ObjectID]*models.DiscussionPost
}

func newFakeStore() *fakeStore {
	return &fakeStore{posts: make(map[primitive.ObjectID]*models.DiscussionPost)}
}

func (f *fakeStore) Insert(_ context.Context, post *models.DiscussionPost) error {
	post.ID = primitive.NewObjectID()
	clone := *post
	f.posts[post.ID] = &clone

	return nil
}

func (f *fakeStore) Get(_ context.Context, id primitive.ObjectID) (*models.DiscussionPost, error) {
	post, ok := f.posts[id]

	if !ok {
		return nil, apperrors.NotFoundf("post %s", id.Hex())
	}

	clone := *post

	return &clone, nil
}

func (f *fakeStore) ByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.DiscussionPost, error) {
	var out []models.DiscussionPost

	for _, id := range ids {
		if post, ok := f.posts[id]; ok {
			out = append(out, *post)
		}
	}

	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.posts[id]; !ok {
		return apperrors.NotFoundf("post %s", id.Hex())
	}

	delete(f.posts, id)

	return nil
}

func (f *fakeStore) DeleteThread(_ context.Context, headID primitive.ObjectID) error {
	delete(f.posts, headID)

	for id, post := range f.posts {
		if post.HeadPostID == headID {
			delete(f.posts, id)
		}
	}

	return nil
}

func (f *fakeStore) PushReply(_ context.Context, parentID, replyID primitive.ObjectID) error {
	parent, ok := f.posts[parentID]

	if !ok {
		return apperrors.NotFoundf("post %s", parentID.Hex())
	}

	parent.ReplyIDs = append(parent.ReplyIDs, replyID)

	return nil
}

func (f *fakeStore) PullReply(_ context.Context, parentID, replyID primitive.ObjectID) error {
	parent, ok := f.posts[parentID]

	if !ok {
		return apperrors.NotFoundf("post %s", parentID.Hex())
	}

	kept := parent.ReplyIDs[:0]

	for _, id := range parent.ReplyIDs {
		if id != replyID {
			kept = append(kept, id)
		}
	}

	parent.ReplyIDs = kept

	return nil
}

func TestCreateHead(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	engine := NewEngine(store)
	author := primitive.NewObjectID()
	board := primitive.NewObjectID()

	t.Run("rejects empty title and content", func(t *testing.T) {
		_, err := engine.CreateHead(ctx, board, author, "  ", "body")
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = engine.CreateHead(ctx, board, author, "title", "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("persists a head post", func(t *testing.T) {
		post, err := engine.CreateHead(ctx, board, author, "Standup notes", "Monday recap")
		require.NoError(t, err)

		assert.False(t, post.IsReply)
		assert.True(t, post.HeadPostID.IsZero())
		assert.True(t, post.ParentID.IsZero())
		assert.NotNil(t, post.ReplyIDs)
		assert.Empty(t, post.ReplyIDs)
	})
}

func TestCreateReply(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	engine := NewEngine(store)
	author := primitive.NewObjectID()
	board := primitive.NewObjectID()

	head, err := engine.CreateHead(ctx, board, author, "Question", "Anyone free Friday?")
	require.NoError(t, err)

	t.Run("reply to the head records both references", func(t *testing.T) {
		reply, err := engine.CreateReply(ctx, head.ID, head.ID, author, "I am")
		require.NoError(t, err)

		assert.True(t, reply.IsReply)
		assert.Equal(t, head.ID, reply.HeadPostID)
		assert.Equal(t, head.ID, reply.ParentID)
		assert.Equal(t, board, reply.BoardID)

		parent, err := store.Get(ctx, head.ID)
		require.NoError(t, err)
		assert.Contains(t, parent.ReplyIDs, reply.ID)
	})

	t.Run("nested reply points at its immediate parent", func(t *testing.T) {
		first, err := engine.CreateReply(ctx, head.ID, head.ID, author, "first")
		require.NoError(t, err)

		second, err := engine.CreateReply(ctx, first.ID, head.ID, author, "second")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ParentID)
		assert.Equal(t, head.ID, second.HeadPostID)
	})

	t.Run("rejects a parent from another thread", func(t *testing.T) {
		other, err := engine.CreateHead(ctx, board, author, "Other", "thread")
		require.NoError(t, err)

		_, err = engine.CreateReply(ctx, other.ID, head.ID, author, "wrong thread")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := engine.CreateReply(ctx, head.ID, head.ID, author, "   ")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing parent is not found", func(t *testing.T) {
		_, err := engine.CreateReply(ctx, primitive.NewObjectID(), head.ID, author, "hi")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestReplies(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	engine := NewEngine(store)
	author := primitive.NewObjectID()
	board := primitive.NewObjectID()

	head, err := engine.CreateHead(ctx, board, author, "Thread", "root")
	require.NoError(t, err)

	// Build: head -> a -> (a1, a2), head -> b. Timestamps are forced so
	// chronological order differs from insertion order.
	a, err := engine.CreateReply(ctx, head.ID, head.ID, author, "a")
	require.NoError(t, err)
	b, err := engine.CreateReply(ctx, head.ID, head.ID, author, "b")
	require.NoError(t, err)
	a1, err := engine.CreateReply(ctx, a.ID, head.ID, author, "a1")
	require.NoError(t, err)
	a2, err := engine.CreateReply(ctx, a.ID, head.ID, author, "a2")
	require.NoError(t, err)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.posts[b.ID].Timestamp = base
	store.posts[a.ID].Timestamp = base.Add(time.Minute)
	store.posts[a2.ID].Timestamp = base.Add(2 * time.Minute)
	store.posts[a1.ID].Timestamp = base.Add(3 * time.Minute)

	fresh, err := store.Get(ctx, head.ID)
	require.NoError(t, err)

	replies, err := engine.Replies(ctx, fresh.ReplyIDs)
	require.NoError(t, err)

	require.Len(t, replies, 2)
	assert.Equal(t, "b", replies[0].Content)
	assert.Equal(t, "a", replies[1].Content)

	children := replies[1].Children
	require.Len(t, children, 2)
	assert.Equal(t, "a2", children[0].Content)
	assert.Equal(t, "a1", children[1].Content)

	t.Run("empty input resolves to empty slice", func(t *testing.T) {
		replies, err := engine.Replies(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, replies)
	})

	t.Run("cyclic reply graph terminates", func(t *testing.T) {
		// Corrupt the data so a1 claims its grandparent as a child.
		store.posts[a1.ID].ReplyIDs = []primitive.ObjectID{a.ID}

		fresh, err := store.Get(ctx, head.ID)
		require.NoError(t, err)

		_, err = engine.Replies(ctx, fresh.ReplyIDs)
		assert.NoError(t, err)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	author := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	board := primitive.NewObjectID()

	build := func(t *testing.T) (*fakeStore, *Engine, *models.DiscussionPost, *models.DiscussionPost, *models.DiscussionPost) {
		store := newFakeStore()
		engine := NewEngine(store)

		head, err := engine.CreateHead(ctx, board, author, "Thread", "root")
		require.NoError(t, err)
		mid, err := engine.CreateReply(ctx, head.ID, head.ID, author, "mid")
		require.NoError(t, err)
		leaf, err := engine.CreateReply(ctx, mid.ID, head.ID, author, "leaf")
		require.NoError(t, err)

		return store, engine, head, mid, leaf
	}

	t.Run("only the author may delete", func(t *testing.T) {
		_, engine, head, _, _ := build(t)

		_, err := engine.Delete(ctx, head.ID, stranger)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("deleting the head removes the whole thread", func(t *testing.T) {
		store, engine, head, mid, leaf := build(t)

		deleted, err := engine.Delete(ctx, head.ID, author)
		require.NoError(t, err)
		assert.False(t, deleted.IsReply)

		assert.Empty(t, store.posts)
		_, err = store.Get(ctx, mid.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		_, err = store.Get(ctx, leaf.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("deleting a reply removes its subtree and unlinks the parent", func(t *testing.T) {
		store, engine, head, mid, leaf := build(t)

		deleted, err := engine.Delete(ctx, mid.ID, author)
		require.NoError(t, err)
		assert.True(t, deleted.IsReply)
		assert.Equal(t, head.ID, deleted.HeadPostID)

		_, err = store.Get(ctx, mid.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		_, err = store.Get(ctx, leaf.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		parent, err := store.Get(ctx, head.ID)
		require.NoError(t, err)
		assert.NotContains(t, parent.ReplyIDs, mid.ID)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		_, engine, _, _, _ := build(t)

		_, err := engine.Delete(ctx, primitive.NewObjectID(), author)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("already-deleted child does not abort the cascade", func(t *testing.T) {
		store, engine, head, mid, leaf := build(t)

		// Drop the leaf behind the engine's back; mid still lists it.
		delete(store.posts, leaf.ID)

		_, err := engine.Delete(ctx, mid.ID, author)
		require.NoError(t, err)

		parent, err := store.Get(ctx, head.ID)
		require.NoError(t, err)
		assert.Empty(t, parent.ReplyIDs)
	})
}
