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
)

type CreateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateClass registers a class and its class-wide discussion board.
func CreateClass(ctx *gin.Context) {
	var body CreateClassRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	name := strings.TrimSpace(body.Name)

	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Class name cannot be empty"})
		return
	}

	_, err := store.Classes.ByName(ctx.Request.Context(), name)

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "A class with that name already exists"})
		return
	}

	if !errors.Is(err, apperrors.ErrNotFound) {
		writeError(ctx, err)
		return
	}

	class := models.Class{Name: name}

	if err := store.Classes.Insert(ctx.Request.Context(), &class); err != nil {
		writeError(ctx, err)
		return
	}

	board := models.DiscussionBoard{IsClassBoard: true, ClassID: class.ID}

	if err := store.Boards.Insert(ctx.Request.Context(), &board); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"class": class})
}

func ListClasses(ctx *gin.Context) {
	classes, err := store.Classes.All(ctx.Request.Context())

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"classes": classes})
}

func GetClass(ctx *gin.Context) {
	classID, ok := objectIDParam(ctx, "classId")

	if !ok {
		return
	}

	class, err := store.Classes.ByID(ctx.Request.Context(), classID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	teams, err := store.Teams.ByClass(ctx.Request.Context(), classID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"class": class, "teams": teams})
}

func EnrollInClass(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	classID, ok := objectIDParam(ctx, "classId")

	if !ok {
		return
	}

	if err := store.Classes.AddStudent(ctx.Request.Context(), classID, currentUserID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Enrolled successfully"})
}

// UnenrollFromClass drops the student from the class roster, then runs
// the membership reconciler so the class's team and its requirement
// assignments are cleaned up in the same request.
func UnenrollFromClass(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	classID, ok := objectIDParam(ctx, "classId")

	if !ok {
		return
	}

	if err := store.Classes.RemoveStudent(ctx.Request.Context(), classID, currentUserID); err != nil {
		writeError(ctx, err)
		return
	}

	removed, err := Membership.Reconcile(ctx.Request.Context(), currentUserID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	removedNames := make([]string, 0, len(removed))

	for _, team := range removed {
		removedNames = append(removedNames, team.Name)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":       "Unenrolled successfully",
		"removed_teams": removedNames,
	})
}
