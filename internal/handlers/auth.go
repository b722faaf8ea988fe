package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/auth"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/studentwork-dev/crewbase/internal/store"
	"github.com/studentwork-dev/crewbase/internal/types"
	"github.com/studentwork-dev/crewbase/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

func Register(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	_, err := store.Users.ByEmail(ctx.Request.Context(), body.Email)

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	if !errors.Is(err, apperrors.ErrNotFound) {
		writeError(ctx, err)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.StudentUser{
		Email:        body.Email,
		PasswordHash: string(passwordHash),
		FirstName:    body.FirstName,
		LastName:     body.LastName,
	}

	if err := store.Users.Insert(ctx.Request.Context(), &user); err != nil {
		writeError(ctx, err)
		return
	}

	if !issueToken(ctx, &user) {
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": types.UserResponse{
		ID:        user.ID.Hex(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}})
}

func Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	user, err := store.Users.ByEmail(ctx.Request.Context(), body.Email)

	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}

		writeError(ctx, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	if !issueToken(ctx, user) {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.UserResponse{
		ID:        user.ID.Hex(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.UserResponse{
		ID:        currentUser.ID.Hex(),
		FirstName: currentUser.FirstName,
		LastName:  currentUser.LastName,
		Email:     currentUser.Email,
	}})
}

func Logout(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Domain:   Domain,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// UpdateEmail changes the account email and reissues the auth token so
// the cookie's claims stay in step with the stored record.
func UpdateEmail(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateEmailRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	newEmail := strings.ToLower(strings.TrimSpace(body.Email))

	if newEmail != currentUser.Email {
		_, err := store.Users.ByEmail(ctx.Request.Context(), newEmail)

		if err == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}

		if !errors.Is(err, apperrors.ErrNotFound) {
			writeError(ctx, err)
			return
		}
	}

	if err := store.Users.UpdateEmail(ctx.Request.Context(), currentUser.ID, newEmail); err != nil {
		writeError(ctx, err)
		return
	}

	user := models.StudentUser{
		ID:        currentUser.ID,
		Email:     newEmail,
		FirstName: currentUser.FirstName,
		LastName:  currentUser.LastName,
	}

	if !issueToken(ctx, &user) {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.UserResponse{
		ID:        user.ID.Hex(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}})
}

func issueToken(ctx *gin.Context, user *models.StudentUser) bool {
	token, err := auth.GenerateJWT(user.ID.Hex(), user.Email)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return false
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   60 * 60 * 24 * 7,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	return true
}
