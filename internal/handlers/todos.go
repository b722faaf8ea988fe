package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateTodoRequest struct {
	ItemName   string `json:"item_name" binding:"required"`
	IsTeamItem bool   `json:"is_team_item"`
	TeamID     string `json:"team_id"`
	Tag        string `json:"tag"`
}

type SetTodoCompleteRequest struct {
	Complete bool `json:"complete"`
}

func CreateTodo(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateTodoRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item := models.TodoItem{
		IsTeamItem:  body.IsTeamItem,
		ItemName:    body.ItemName,
		AssocUserID: currentUserID,
		Tag:         body.Tag,
	}

	if body.IsTeamItem {
		teamID, err := primitive.ObjectIDFromHex(body.TeamID)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team_id"})
			return
		}

		team, err := store.Teams.ByID(ctx.Request.Context(), teamID)

		if err != nil {
			writeError(ctx, err)
			return
		}

		if !team.HasMember(currentUserID) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this team"})
			return
		}

		item.AssocTeamID = teamID
	}

	if err := store.Todos.Insert(ctx.Request.Context(), &item); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"todo": item})
}

// ListMyTodos returns the personal list plus the team lists of every
// team the student is on.
func ListMyTodos(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	personal, err := store.Todos.ByUser(ctx.Request.Context(), currentUserID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	teams, err := store.Teams.ForStudent(ctx.Request.Context(), currentUserID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	teamIDs := make([]primitive.ObjectID, 0, len(teams))

	for _, team := range teams {
		teamIDs = append(teamIDs, team.ID)
	}

	var teamItems []models.TodoItem

	if len(teamIDs) > 0 {
		teamItems, err = store.Todos.ByTeams(ctx.Request.Context(), teamIDs)

		if err != nil {
			writeError(ctx, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"personal": personal, "team": teamItems})
}

func SetTodoComplete(ctx *gin.Context) {
	todoID, ok := objectIDParam(ctx, "todoId")

	if !ok {
		return
	}

	var body SetTodoCompleteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := store.Todos.SetComplete(ctx.Request.Context(), todoID, body.Complete); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Todo updated"})
}

func DeleteTodo(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	todoID, ok := objectIDParam(ctx, "todoId")

	if !ok {
		return
	}

	item, err := store.Todos.ByID(ctx.Request.Context(), todoID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	if !item.IsTeamItem && item.AssocUserID != currentUserID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own todo items"})
		return
	}

	if err := store.Todos.Delete(ctx.Request.Context(), todoID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}
