package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BrainstormItemRequest struct {
	Description string `json:"description" binding:"required"`
}

func CreateBrainstormItem(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	if _, err := store.Projects.ByID(ctx.Request.Context(), projectID); err != nil {
		writeError(ctx, err)
		return
	}

	var body BrainstormItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item := models.BrainstormItem{
		Description: body.Description,
		CreatedBy:   currentUserID,
		ProjectID:   projectID,
	}

	if err := store.Brainstorm.Insert(ctx.Request.Context(), &item); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"item": item})
}

func ListBrainstormItems(ctx *gin.Context) {
	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	items, err := store.Brainstorm.ByProject(ctx.Request.Context(), projectID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

func UpdateBrainstormItem(ctx *gin.Context) {
	itemID, ok := objectIDParam(ctx, "itemId")

	if !ok {
		return
	}

	var body BrainstormItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := store.Brainstorm.SetDescription(ctx.Request.Context(), itemID, body.Description); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item updated"})
}

// UpvoteBrainstormItem records the student's upvote. A previous
// downvote by the same student is withdrawn in the same update.
func UpvoteBrainstormItem(ctx *gin.Context) {
	vote(ctx, store.Brainstorm.Upvote)
}

func DownvoteBrainstormItem(ctx *gin.Context) {
	vote(ctx, store.Brainstorm.Downvote)
}

func DeleteBrainstormItem(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, ok := objectIDParam(ctx, "itemId")

	if !ok {
		return
	}

	item, err := store.Brainstorm.ByID(ctx.Request.Context(), itemID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	if item.CreatedBy != currentUserID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own ideas"})
		return
	}

	if err := store.Brainstorm.Delete(ctx.Request.Context(), itemID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

func vote(ctx *gin.Context, voteFn func(context.Context, primitive.ObjectID, primitive.ObjectID) error) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, ok := objectIDParam(ctx, "itemId")

	if !ok {
		return
	}

	if err := voteFn(ctx.Request.Context(), itemID, currentUserID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}
