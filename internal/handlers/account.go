package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/types"
	"github.com/studentwork-dev/crewbase/internal/utils"
)

// GetAccountOverview loads the signed-in student's classes and teams.
// Membership is reconciled first, so a student dropped from a class is
// silently removed from that class's team and told about it here.
func GetAccountOverview(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	removed, err := Membership.Reconcile(ctx.Request.Context(), currentUser.ID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	classes, err := store.Classes.ForStudent(ctx.Request.Context(), currentUser.ID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	teams, err := store.Teams.ForStudent(ctx.Request.Context(), currentUser.ID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	removedNames := make([]string, 0, len(removed))

	for _, team := range removed {
		removedNames = append(removedNames, team.Name)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:        currentUser.ID.Hex(),
			FirstName: currentUser.FirstName,
			LastName:  currentUser.LastName,
			Email:     currentUser.Email,
		},
		"classes":       classes,
		"teams":         teams,
		"removed_teams": removedNames,
	})
}
