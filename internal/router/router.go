package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studentwork-dev/crewbase/internal/handlers"
	"github.com/studentwork-dev/crewbase/internal/middleware"
	"github.com/studentwork-dev/crewbase/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/boards/:boardId", middleware.AuthMiddleware(), handlers.BoardWebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PATCH("/email", middleware.AuthMiddleware(), handlers.UpdateEmail)
		}

		account := api.Group("/account", middleware.AuthMiddleware())
		{
			account.GET("", handlers.GetAccountOverview)
		}

		classes := api.Group("/classes", middleware.AuthMiddleware())
		{
			classes.POST("", handlers.CreateClass)
			classes.GET("", handlers.ListClasses)
			classes.GET("/:classId", handlers.GetClass)
			classes.POST("/:classId/enroll", handlers.EnrollInClass)
			classes.POST("/:classId/unenroll", handlers.UnenrollFromClass)
			classes.GET("/:classId/teams", handlers.ListTeamsByClass)
		}

		teams := api.Group("/teams", middleware.AuthMiddleware())
		{
			teams.POST("", handlers.CreateTeam)
			teams.GET("", handlers.ListMyTeams)
			teams.GET("/:teamId", handlers.GetTeam)
			teams.POST("/:teamId/join", handlers.JoinTeam)
			teams.POST("/:teamId/leave", handlers.LeaveTeam)
			teams.GET("/:teamId/projects", handlers.ListProjectsByTeam)

			// Calendar and availability
			teams.POST("/:teamId/calendar", handlers.CreateCalendarItem)
			teams.GET("/:teamId/calendar", handlers.ListCalendarItems)
			teams.POST("/:teamId/availability", handlers.MarkUnavailable)
			teams.GET("/:teamId/availability", handlers.ListTeamAvailability)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.POST("", handlers.CreateProject)
			projects.GET("/:projectId", handlers.GetProject)
			projects.PATCH("/:projectId", handlers.UpdateProject)
			projects.DELETE("/:projectId", handlers.DeleteProject)
			projects.GET("/:projectId/progress", handlers.GetProjectProgress)

			// Requirements stack
			projects.POST("/:projectId/requirements", handlers.CreateRequirement)
			projects.GET("/:projectId/requirements", handlers.ListRequirements)

			// Brainstorm
			projects.POST("/:projectId/brainstorm", handlers.CreateBrainstormItem)
			projects.GET("/:projectId/brainstorm", handlers.ListBrainstormItems)

			// Sprint retro board
			projects.POST("/:projectId/sprint-board", handlers.CreateSprintItem)
			projects.GET("/:projectId/sprint-board", handlers.ListSprintItems)
		}

		requirements := api.Group("/requirements", middleware.AuthMiddleware())
		{
			requirements.PUT("/:requirementId", handlers.UpdateRequirement)
			requirements.DELETE("/:requirementId", handlers.DeleteRequirement)
			requirements.POST("/:requirementId/toggle-complete", handlers.ToggleRequirementComplete)
			requirements.POST("/:requirementId/assignees/:studentId", handlers.AddRequirementAssignee)
			requirements.DELETE("/:requirementId/assignees/:studentId", handlers.RemoveRequirementAssignee)
		}

		brainstorm := api.Group("/brainstorm", middleware.AuthMiddleware())
		{
			brainstorm.PATCH("/:itemId", handlers.UpdateBrainstormItem)
			brainstorm.POST("/:itemId/upvote", handlers.UpvoteBrainstormItem)
			brainstorm.POST("/:itemId/downvote", handlers.DownvoteBrainstormItem)
			brainstorm.DELETE("/:itemId", handlers.DeleteBrainstormItem)
		}

		sprintBoard := api.Group("/sprint-board", middleware.AuthMiddleware())
		{
			sprintBoard.PUT("/:itemId", handlers.UpdateSprintItem)
			sprintBoard.DELETE("/:itemId", handlers.DeleteSprintItem)
		}

		boards := api.Group("/boards", middleware.AuthMiddleware())
		{
			boards.GET("", handlers.ListMyBoards)
			boards.GET("/:boardId", handlers.GetBoard)
			boards.POST("/:boardId/posts", handlers.CreatePost)
		}

		posts := api.Group("/posts", middleware.AuthMiddleware())
		{
			posts.GET("/:postId", handlers.GetThread)
			posts.POST("/:postId/replies", handlers.CreateReply)
			posts.DELETE("/:postId", handlers.DeletePost)
		}

		todos := api.Group("/todos", middleware.AuthMiddleware())
		{
			todos.POST("", handlers.CreateTodo)
			todos.GET("", handlers.ListMyTodos)
			todos.PATCH("/:todoId", handlers.SetTodoComplete)
			todos.DELETE("/:todoId", handlers.DeleteTodo)
		}

		calendar := api.Group("/calendar", middleware.AuthMiddleware())
		{
			calendar.PUT("/:eventId", handlers.UpdateCalendarItem)
			calendar.DELETE("/:eventId", handlers.DeleteCalendarItem)
			calendar.GET("/:eventId/minutes", handlers.GetMeetingMinutes)
			calendar.PUT("/:eventId/minutes", handlers.UpdateMeetingMinutes)
			calendar.GET("/:eventId/minutes/export", handlers.ExportMeetingMinutes)
		}

		availability := api.Group("/availability", middleware.AuthMiddleware())
		{
			availability.DELETE("/:slotId", handlers.ClearUnavailable)
		}
	}

	return r
}
