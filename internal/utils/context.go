package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/middleware"
	"github.com/studentwork-dev/crewbase/internal/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (primitive.ObjectID, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return primitive.NilObjectID, err
	}

	return user.ID, nil
}
