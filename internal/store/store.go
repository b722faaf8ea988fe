// Package store provides the MongoDB data access layer. One store per
// collection, initialized once at startup via Init.
package store

import "go.mongodb.org/mongo-driver/mongo"

var (
	Users        *UserStore
	Classes      *ClassStore
	Teams        *TeamStore
	Projects     *ProjectStore
	Requirements *RequirementStore
	Boards       *BoardStore
	Posts        *PostStore
	Todos        *TodoStore
	Brainstorm   *BrainstormStore
	SprintBoard  *SprintBoardStore
	Calendar     *CalendarStore
	Availability *AvailabilityStore
	Minutes      *MinutesStore
)

func Init(db *mongo.Database) {
	Users = &UserStore{c: db.Collection("StudentUsers")}
	Classes = &ClassStore{c: db.Collection("Classes")}
	Teams = &TeamStore{c: db.Collection("Teams")}
	Projects = &ProjectStore{c: db.Collection("Projects")}
	Requirements = &RequirementStore{c: db.Collection("Requirements")}
	Boards = &BoardStore{c: db.Collection("DiscussionBoards")}
	Posts = &PostStore{c: db.Collection("DiscussionPosts")}
	Todos = &TodoStore{c: db.Collection("TodoItems")}
	Brainstorm = &BrainstormStore{c: db.Collection("BrainstormItems")}
	SprintBoard = &SprintBoardStore{c: db.Collection("SprintBoardItems")}
	Calendar = &CalendarStore{c: db.Collection("CalendarItems")}
	Availability = &AvailabilityStore{c: db.Collection("UserAvailability")}
	Minutes = &MinutesStore{c: db.Collection("MeetingMinutes")}
}
