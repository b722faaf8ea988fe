package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/progress"
	"github.com/studentwork-dev/crewbase/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TeamID      string `json:"team_id" binding:"required"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type DeleteProjectRequest struct {
	ConfirmName string `json:"confirm_name" binding:"required"`
}

func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	name := strings.TrimSpace(body.Name)

	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project name cannot be empty"})
		return
	}

	teamID, err := primitive.ObjectIDFromHex(body.TeamID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team_id"})
		return
	}

	if _, err := store.Teams.ByID(ctx.Request.Context(), teamID); err != nil {
		writeError(ctx, err)
		return
	}

	_, err = store.Projects.ByNameAndTeam(ctx.Request.Context(), name, teamID)

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "A project with that name already exists for this team"})
		return
	}

	if !errors.Is(err, apperrors.ErrNotFound) {
		writeError(ctx, err)
		return
	}

	project := models.Project{
		Name:           name,
		Description:    strings.TrimSpace(body.Description),
		AssociatedTeam: teamID,
	}

	if err := store.Projects.Insert(ctx.Request.Context(), &project); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"project": project})
}

func GetProject(ctx *gin.Context) {
	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	project, err := store.Projects.ByID(ctx.Request.Context(), projectID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

// ListProjectsByTeam returns the team's projects with each project's
// overall completion percentage alongside.
func ListProjectsByTeam(ctx *gin.Context) {
	teamID, ok := objectIDParam(ctx, "teamId")

	if !ok {
		return
	}

	projects, err := store.Projects.ByTeam(ctx.Request.Context(), teamID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	type projectWithProgress struct {
		models.Project
		Progress float64 `json:"progress"`
	}

	out := make([]projectWithProgress, 0, len(projects))

	for _, project := range projects {
		reqs, err := store.Requirements.ByProject(ctx.Request.Context(), project.ID)

		if err != nil {
			writeError(ctx, err)
			return
		}

		out = append(out, projectWithProgress{Project: project, Progress: progress.Overall(reqs)})
	}

	ctx.JSON(http.StatusOK, gin.H{"projects": out})
}

func UpdateProject(ctx *gin.Context) {
	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := store.Projects.ByID(ctx.Request.Context(), projectID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)

		if name == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project name cannot be empty"})
			return
		}

		if name != project.Name {
			_, err := store.Projects.ByNameAndTeam(ctx.Request.Context(), name, project.AssociatedTeam)

			if err == nil {
				ctx.JSON(http.StatusConflict, gin.H{"error": "A project with that name already exists for this team"})
				return
			}

			if !errors.Is(err, apperrors.ErrNotFound) {
				writeError(ctx, err)
				return
			}
		}

		if err := store.Projects.SetName(ctx.Request.Context(), projectID, name); err != nil {
			writeError(ctx, err)
			return
		}

		project.Name = name
	}

	if body.Description != nil {
		description := strings.TrimSpace(*body.Description)

		if err := store.Projects.SetDescription(ctx.Request.Context(), projectID, description); err != nil {
			writeError(ctx, err)
			return
		}

		project.Description = description
	}

	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

// DeleteProject removes a project and everything hanging off it. The
// caller must echo the project name back to confirm.
func DeleteProject(ctx *gin.Context) {
	projectID, ok := objectIDParam(ctx, "projectId")

	if !ok {
		return
	}

	var body DeleteProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	project, err := store.Projects.ByID(ctx.Request.Context(), projectID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	if strings.TrimSpace(body.ConfirmName) != project.Name {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project name confirmation does not match"})
		return
	}

	if err := store.Requirements.DeleteByProject(ctx.Request.Context(), projectID); err != nil {
		writeError(ctx, err)
		return
	}

	if err := store.Brainstorm.DeleteByProject(ctx.Request.Context(), projectID); err != nil {
		writeError(ctx, err)
		return
	}

	if err := store.SprintBoard.DeleteByProject(ctx.Request.Context(), projectID); err != nil {
		writeError(ctx, err)
		return
	}

	if err := store.Projects.Delete(ctx.Request.Context(), projectID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
