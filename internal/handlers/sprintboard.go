package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/utils"
)

type CreateSprintItemRequest struct {
	Category     string `json:"category" binding:"required"`
	Description  string `json:"description" binding:"required"`
	SprintNumber int    `json:"sprint_number" binding:"required"`
}

type UpdateSprintItemRequest struct {
	Description  string `json:"description" binding:"required"`
	SprintNumber int    `json:"sprint_number" binding:"required"`
}

var sprintCategories = map[string]bool{
	"WentWell":   true,
	"WentPoorly": true,
	"ActionItem": true,
}

func CreateSprintItem(ctx *gin.Context) {
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

	var body CreateSprintItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !sprintCategories[body.Category] {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Category must be WentWell, WentPoorly or ActionItem"})
		return
	}

	item := models.SprintBoardItem{
		Category:     body.Category,
		Description:  body.Description,
		SprintNumber: body.SprintNumber,
		CreatedBy:    currentUserID,
		ProjectID:    projectID,
	}

	if err := store.SprintBoard.Insert(ctx.Request.Context(), &item); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"item": item})
}

// ListSprintItems lists retro notes for a project. Pass ?sprint=N to
// narrow to one sprint.
func ListSprintItems(ctx *gin.Context) {
	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	var sprintFilter *int

	if raw := ctx.Query("sprint"); raw != "" {
		sprint, err := strconv.Atoi(raw)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sprint"})
			return
		}

		sprintFilter = &sprint
	}

	items, err := store.SprintBoard.ByProject(ctx.Request.Context(), projectID, sprintFilter)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

func UpdateSprintItem(ctx *gin.Context) {
	itemID, ok := objectIDParam(ctx, "itemId")

	if !ok {
		return
	}

	var body UpdateSprintItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := store.SprintBoard.Update(ctx.Request.Context(), itemID, body.Description, body.SprintNumber); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item updated"})
}

func DeleteSprintItem(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, ok := objectIDParam(ctx, "itemId")

	if !ok {
		return
	}

	item, err := store.SprintBoard.ByID(ctx.Request.Context(), itemID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	if item.CreatedBy != currentUserID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own retro notes"})
		return
	}

	if err := store.SprintBoard.Delete(ctx.Request.Context(), itemID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
