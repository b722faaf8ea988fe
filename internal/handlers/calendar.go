package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/utils"
)

type CalendarItemRequest struct {
	EventName     string    `json:"event_name" binding:"required"`
	StartDateTime time.Time `json:"start_date_time" binding:"required"`
	EndDateTime   time.Time `json:"end_date_time" binding:"required"`
	Notes         string    `json:"notes"`
}

type AvailabilityRequest struct {
	Day  string `json:"day" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func CreateCalendarItem(ctx *gin.Context) {
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

	var body CalendarItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item := models.CalendarItem{
		EventName:     body.EventName,
		StartDateTime: body.StartDateTime,
		EndDateTime:   body.EndDateTime,
		AssocTeamID:   teamID,
		Notes:         body.Notes,
	}

	if err := store.Calendar.Insert(ctx.Request.Context(), &item); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"event": item})
}

func ListCalendarItems(ctx *gin.Context) {
	teamID, ok := objectIDParam(ctx, "teamId")

	if !ok {
		return
	}

	items, err := store.Calendar.ByTeam(ctx.Request.Context(), teamID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"events": items})
}

func UpdateCalendarItem(ctx *gin.Context) {
	eventID, ok := objectIDParam(ctx, "eventId")

	if !ok {
		return
	}

	existing, err := store.Calendar.ByID(ctx.Request.Context(), eventID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	var body CalendarItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	existing.EventName = body.EventName
	existing.StartDateTime = body.StartDateTime
	existing.EndDateTime = body.EndDateTime
	existing.Notes = body.Notes

	if err := store.Calendar.Replace(ctx.Request.Context(), existing); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"event": existing})
}

func DeleteCalendarItem(ctx *gin.Context) {
	eventID, ok := objectIDParam(ctx, "eventId")

	if !ok {
		return
	}

	if err := store.Calendar.Delete(ctx.Request.Context(), eventID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// MarkUnavailable records a half-hour slot the student cannot meet in.
func MarkUnavailable(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, ok := objectIDParam(ctx, "teamId")

	if !ok {
		return
	}

	var body AvailabilityRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	slot := models.UserAvailability{
		Day:         body.Day,
		Time:        body.Time,
		AssocUserID: currentUserID,
		AssocTeamID: teamID,
	}

	if err := store.Availability.Insert(ctx.Request.Context(), &slot); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"slot": slot})
}

func ListTeamAvailability(ctx *gin.Context) {
	teamID, ok := objectIDParam(ctx, "teamId")

	if !ok {
		return
	}

	slots, err := store.Availability.ByTeam(ctx.Request.Context(), teamID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ClearUnavailable deletes a slot the signed-in student marked earlier.
// Another student's slots cannot be touched.
func ClearUnavailable(ctx *gin.Context) {
	currentUserID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	slotID, ok := objectIDParam(ctx, "slotId")

	if !ok {
		return
	}

	if err := store.Availability.Delete(ctx.Request.Context(), slotID, currentUserID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Slot cleared"})
}
