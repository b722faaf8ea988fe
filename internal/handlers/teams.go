package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateTeamRequest struct {
	Name    string `json:"name" binding:"required"`
	ClassID string `json:"class_id" binding:"required"`
}

type TeamMemberResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateTeam makes a team under a class, gives it a discussion board
// and signs the creator up as the first member.
func CreateTeam(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateTeamRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	name := strings.TrimSpace(body.Name)

	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Team name cannot be empty"})
		return
	}

	classID, err := primitive.ObjectIDFromHex(body.ClassID)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class_id"})
		return
	}

	if _, err := store.Classes.ByID(ctx.Request.Context(), classID); err != nil {
		writeError(ctx, err)
		return
	}

	_, err = store.Teams.ByNameAndClass(ctx.Request.Context(), name, classID)

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "A team with that name already exists in this class"})
		return
	}

	if !errors.Is(err, apperrors.ErrNotFound) {
		writeError(ctx, err)
		return
	}

	team := models.Team{Name: name, AssociatedClass: classID}

	if err := Membership.GuardJoin(ctx.Request.Context(), currentUserID, &team); err != nil {
		writeError(ctx, err)
		return
	}

	team.Members = []primitive.ObjectID{currentUserID}

	if err := store.Teams.Insert(ctx.Request.Context(), &team); err != nil {
		writeError(ctx, err)
		return
	}

	board := models.DiscussionBoard{IsClassBoard: false, TeamID: team.ID}

	if err := store.Boards.Insert(ctx.Request.Context(), &board); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"team": team})
}

func ListTeamsByClass(ctx *gin.Context) {
	classID, ok := objectIDParam(ctx, "classId")

	if !ok {
		return
	}

	teams, err := store.Teams.ByClass(ctx.Request.Context(), classID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"teams": teams})
}

func ListMyTeams(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teams, err := store.Teams.ForStudent(ctx.Request.Context(), currentUserID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeam returns the team with its member roster resolved to names.
// Only members may view a team page.
func GetTeam(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, ok := objectIDParam(ctx, "teamId")

	if !ok {
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

	members, err := store.Users.ByIDs(ctx.Request.Context(), team.Members)

	if err != nil {
		writeError(ctx, err)
		return
	}

	memberResponses := make([]TeamMemberResponse, 0, len(members))

	for _, member := range members {
		memberResponses = append(memberResponses, TeamMemberResponse{
			ID:        member.ID.Hex(),
			FirstName: member.FirstName,
			LastName:  member.LastName,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"team": team, "members": memberResponses})
}

func JoinTeam(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, ok := objectIDParam(ctx, "teamId")

	if !ok {
		return
	}

	team, err := store.Teams.ByID(ctx.Request.Context(), teamID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	if err := Membership.GuardJoin(ctx.Request.Context(), currentUserID, team); err != nil {
		writeError(ctx, err)
		return
	}

	if err := store.Teams.AddMember(ctx.Request.Context(), teamID, currentUserID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Joined team successfully"})
}

// LeaveTeam removes the student from the team and drops their name
// from every requirement assignment under the team's projects.
func LeaveTeam(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, ok := objectIDParam(ctx, "teamId")

	if !ok {
		return
	}

	team, err := store.Teams.ByID(ctx.Request.Context(), teamID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	if !team.HasMember(currentUserID) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "You are not a member of this team"})
		return
	}

	if err := store.Teams.RemoveMember(ctx.Request.Context(), teamID, currentUserID); err != nil {
		writeError(ctx, err)
		return
	}

	if err := Membership.Unassign(ctx.Request.Context(), currentUserID, teamID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Left team successfully"})
}
