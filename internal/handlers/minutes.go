package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/store"
)

type UpdateMinutesRequest struct {
	Notes string `json:"notes"`
}

// GetMeetingMinutes returns the minutes for a meeting, creating an
// empty document the first time anyone opens them.
func GetMeetingMinutes(ctx *gin.Context) {
	meetingID, ok := objectIDParam(ctx, "eventId")

	if !ok {
		return
	}

	if _, err := store.Calendar.ByID(ctx.Request.Context(), meetingID); err != nil {
		writeError(ctx, err)
		return
	}

	minutes, err := store.Minutes.GetOrCreate(ctx.Request.Context(), meetingID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"minutes": minutes})
}

func UpdateMeetingMinutes(ctx *gin.Context) {
	meetingID, ok := objectIDParam(ctx, "eventId")

	if !ok {
		return
	}

	var body UpdateMinutesRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if _, err := store.Minutes.GetOrCreate(ctx.Request.Context(), meetingID); err != nil {
		writeError(ctx, err)
		return
	}

	if err := store.Minutes.SetNotes(ctx.Request.Context(), meetingID, body.Notes); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Minutes saved"})
}

// ExportMeetingMinutes serves the minutes as a plain-text download
// headed by the meeting name and start time.
func ExportMeetingMinutes(ctx *gin.Context) {
	meetingID, ok := objectIDParam(ctx, "eventId")

	if !ok {
		return
	}

	meeting, err := store.Calendar.ByID(ctx.Request.Context(), meetingID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	minutes, err := store.Minutes.ByMeeting(ctx.Request.Context(), meetingID)

	if err != nil {
		writeError(ctx, err)
		return
	}

	body := fmt.Sprintf("%s\n%s\n\n%s\n",
		meeting.EventName,
		meeting.StartDateTime.Format("Jan 2, 2006 3:04 PM"),
		minutes.Notes)

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meeting.EventName+"-minutes.txt"))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
