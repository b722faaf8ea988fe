package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CreateReplyRequest struct {
	ParentID string `json:"parent_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// ListMyBoards returns the discussion boards the student can post on:
// one per enrolled class and one per joined team, labeled with the
// class or team name.
func ListMyBoards(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	classes, err := store.Classes.ForStudent(ctx.Request.Context(), currentUserID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	teams, err := store.Teams.ForStudent(ctx.Request.Context(), currentUserID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	classIDs := make([]primitive.ObjectID, 0, len(classes))
	classNames := make(map[primitive.ObjectID]string, len(classes))

	for _, class := range classes {
		classIDs = append(classIDs, class.ID)
		classNames[class.ID] = class.Name
	}

	teamIDs := make([]primitive.ObjectID, 0, len(teams))
	teamNames := make(map[primitive.ObjectID]string, len(teams))

	for _, team := range teams {
		teamIDs = append(teamIDs, team.ID)
		teamNames[team.ID] = team.Name
	}

	type boardResponse struct {
		models.DiscussionBoard
		Name string `json:"name"`
	}

	var boards []boardResponse

	if len(classIDs) > 0 {
		classBoards, err := store.Boards.ByClassIDs(ctx.Request.Context(), classIDs)

		if err != nil {
			writeError(ctx, err)
			return
		}

		for _, board := range classBoards {
			boards = append(boards, boardResponse{DiscussionBoard: board, Name: classNames[board.ClassID]})
		}
	}

	if len(teamIDs) > 0 {
		teamBoards, err := store.Boards.ByTeamIDs(ctx.Request.Context(), teamIDs)

		if err != nil {
			writeError(ctx, err)
			return
		}

		for _, board := range teamBoards {
			boards = append(boards, boardResponse{DiscussionBoard: board, Name: teamNames[board.TeamID]})
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"boards": boards})
}

// GetBoard returns the board's head posts, newest first, with author
// names resolved.
func GetBoard(ctx *gin.Context) {
	boardID, ok := objectIDParam(ctx, "boardId")

	if !ok {
		return
	}

	board, err := store.Boards.ByID(ctx.Request.Context(), boardID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	posts, err := store.Posts.HeadsByBoard(ctx.Request.Context(), boardID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	authors, err := authorNames(ctx, posts)

	if err != nil {
		writeError(ctx, err)
		return
	}

	type postResponse struct {
		models.DiscussionPost
		AuthorName string `json:"author_name"`
	}

	out := make([]postResponse, 0, len(posts))

	for _, post := range posts {
		out = append(out, postResponse{DiscussionPost: post, AuthorName: authors[post.CreatedBy]})
	}

	ctx.JSON(http.StatusOK, gin.H{"board": board, "posts": out})
}

func CreatePost(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	boardID, ok := objectIDParam(ctx, "boardId")

	if !ok {
		return
	}

	if _, err := store.Boards.ByID(ctx.Request.Context(), boardID); err != nil {
		writeError(ctx, err)
		return
	}

	var body CreatePostRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	post, err := Threads.CreateHead(ctx.Request.Context(), boardID, currentUserID, body.Title, body.Content)

	if err != nil {
		writeError(ctx, err)
		return
	}

	BroadcastBoardRefresh(boardID.Hex())

	ctx.JSON(http.StatusCreated, gin.H{"post": post})
}

// GetThread returns a head post and its full reply tree, each level in
// chronological order.
func GetThread(ctx *gin.Context) {
	postID, ok := objectIDParam(ctx, "postId")

	if !ok {
		return
	}

	post, err := store.Posts.Get(ctx.Request.Context(), postID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	if post.IsReply {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Post is not the head of a thread"})
		return
	}

	replies, err := Threads.Replies(ctx.Request.Context(), post.ReplyIDs)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": post, "replies": replies})
}

func CreateReply(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	headID, ok := objectIDParam(ctx, "postId")

	if !ok {
		return
	}

	var body CreateReplyRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	parentID, err := primitive.ObjectIDFromHex(body.ParentID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parent_id"})
		return
	}

	reply, err := Threads.CreateReply(ctx.Request.Context(), parentID, headID, currentUserID, body.Content)

	if err != nil {
		writeError(ctx, err)
		return
	}

	BroadcastBoardRefresh(reply.BoardID.Hex())

	ctx.JSON(http.StatusCreated, gin.H{"reply": reply})
}

// DeletePost removes a post and every reply under it. Only the author
// may delete. The response says where the client should navigate next:
// the head post for a reply, the board for a head post.
func DeletePost(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	postID, ok := objectIDParam(ctx, "postId")

	if !ok {
		return
	}

	deleted, err := Threads.Delete(ctx.Request.Context(), postID, currentUserID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	BroadcastBoardRefresh(deleted.BoardID.Hex())

	response := gin.H{
		"message":  "Post deleted successfully",
		"board_id": deleted.BoardID.Hex(),
	}

	if deleted.IsReply {
		response["head_post_id"] = deleted.HeadPostID.Hex()
	}

	ctx.JSON(http.StatusOK, response)
}

func authorNames(ctx *gin.Context, posts []models.DiscussionPost) (map[primitive.ObjectID]string, error) {
	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0, len(posts))

	for _, post := range posts {
		if !seen[post.CreatedBy] {
			seen[post.CreatedBy] = true
			ids = append(ids, post.CreatedBy)
		}
	}

	if len(ids) == 0 {
		return map[primitive.ObjectID]string{}, nil
	}

	users, err := store.Users.ByIDs(ctx.Request.Context(), ids)

	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(users))

	for _, user := range users {
		names[user.ID] = user.FullName()
	}

	return names, nil
}
