package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Requirement is a unit of project work tracked on the requirements stack.
// Number is the human-assigned requirement number, unique within a project.
// Progress is a percentage in [0, 100]; nil means no progress recorded yet.
type Requirement struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Number      *int                 `bson:"requirement_number,omitempty" json:"requirement_number,omitempty"`
	Description string               `bson:"description" json:"description"`
	StoryPoints *int                 `bson:"story_points,omitempty" json:"story_points,omitempty"`
	Priority    *int                 `bson:"priority,omitempty" json:"priority,omitempty"`
	SprintNo    *int                 `bson:"sprint_no,omitempty" json:"sprint_no,omitempty"`
	ProjectID   primitive.ObjectID   `bson:"assoc_project_id" json:"assoc_project_id"`
	Assignees   []primitive.ObjectID `bson:"assignees" json:"assignees"`
	IsComplete  bool                 `bson:"is_complete" json:"is_complete"`
	Progress    *int                 `bson:"progress,omitempty" json:"progress,omitempty"`
}

func (r Requirement) HasAssignee(studentID primitive.ObjectID) bool {
	for _, id := range r.Assignees {
		if id == studentID {
			return true
		}
	}

	return false
}
