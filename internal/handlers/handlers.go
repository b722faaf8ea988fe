package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/services"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/threads"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	Threads    *threads.Engine
	Membership *services.Reconciler
)

// Init wires the engines to the store singletons. Call after store.Init.
func Init() {
	Threads = threads.NewEngine(store.Posts)
	Membership = services.NewReconciler(store.Classes, store.Teams, store.Projects, store.Requirements)
}

// writeError maps the core error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a store fault: logged, surfaced generically.
func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("Store error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func objectIDParam(ctx *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(name))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return primitive.NilObjectID, false
	}

	return id, true
}
