package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/progress"
	"github.com/studentwork-dev/crewbase/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequirementRequest struct {
	Number      *int   `json:"requirement_number"`
	Description string `json:"description" binding:"required"`
	StoryPoints *int   `json:"story_points"`
	Priority    *int   `json:"priority"`
	SprintNo    *int   `json:"sprint_no"`
	Progress    *int   `json:"progress"`
	IsComplete  bool   `json:"is_complete"`
}

func CreateRequirement(ctx *gin.Context) {
	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	if _, err := store.Projects.ByID(ctx.Request.Context(), projectID); err != nil {
		writeError(ctx, err)
		return
	}

	var body RequirementRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req := models.Requirement{
		Number:      body.Number,
		Description: body.Description,
		StoryPoints: body.StoryPoints,
		Priority:    body.Priority,
		SprintNo:    body.SprintNo,
		ProjectID:   projectID,
		Assignees:   []primitive.ObjectID{},
		IsComplete:  body.IsComplete,
		Progress:    body.Progress,
	}

	if err := store.Requirements.Create(ctx.Request.Context(), &req); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"requirement": req})
}

func ListRequirements(ctx *gin.Context) {
	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	reqs, err := store.Requirements.ByProject(ctx.Request.Context(), projectID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"requirements": reqs})
}

// GetProjectProgress reports the overall completion percentage plus the
// per-sprint breakdown it was computed from.
func GetProjectProgress(ctx *gin.Context) {
	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	if _, err := store.Projects.ByID(ctx.Request.Context(), projectID); err != nil {
		writeError(ctx, err)
		return
	}

	reqs, err := store.Requirements.ByProject(ctx.Request.Context(), projectID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	bySprint := make(map[string]float64)

	for sprint, avg := range progress.SprintAverages(reqs) {
		bySprint[strconv.Itoa(sprint)] = avg
	}

	ctx.JSON(http.StatusOK, gin.H{
		"overall":   progress.Overall(reqs),
		"by_sprint": bySprint,
	})
}

func UpdateRequirement(ctx *gin.Context) {
	reqID, ok := objectIDParam(ctx, "requirementId")

	if !ok {
		return
	}

	existing, err := store.Requirements.ByID(ctx.Request.Context(), reqID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	var body RequirementRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	existing.Number = body.Number
	existing.Description = body.Description
	existing.StoryPoints = body.StoryPoints
	existing.Priority = body.Priority
	existing.SprintNo = body.SprintNo
	existing.Progress = body.Progress
	existing.IsComplete = body.IsComplete

	if err := store.Requirements.Update(ctx.Request.Context(), existing); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"requirement": existing})
}

func DeleteRequirement(ctx *gin.Context) {
	reqID, ok := objectIDParam(ctx, "requirementId")

	if !ok {
		return
	}

	if err := store.Requirements.Delete(ctx.Request.Context(), reqID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Requirement deleted successfully"})
}

func ToggleRequirementComplete(ctx *gin.Context) {
	reqID, ok := objectIDParam(ctx, "requirementId")

	if !ok {
		return
	}

	req, err := store.Requirements.ToggleComplete(ctx.Request.Context(), reqID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"requirement": req})
}

func AddRequirementAssignee(ctx *gin.Context) {
	reqID, ok := objectIDParam(ctx, "requirementId")

	if !ok {
		return
	}

	studentID, ok := objectIDParam(ctx, "studentId")

	if !ok {
		return
	}

	if err := store.Requirements.AddAssignee(ctx.Request.Context(), reqID, studentID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Assignee added"})
}

func RemoveRequirementAssignee(ctx *gin.Context) {
	reqID, ok := objectIDParam(ctx, "requirementId")

	if !ok {
		return
	}

	studentID, ok := objectIDParam(ctx, "studentId")

	if !ok {
		return
	}

	if err := store.Requirements.RemoveAssignee(ctx.Request.Context(), reqID, studentID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Assignee removed"})
}
