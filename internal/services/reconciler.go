// Package services holds cross-entity operations that span more than
// one collection.
package services

import (
	"context"

	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassDirectory interface {
	ForStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Class, error)
}

type TeamDirectory interface {
	ForStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Team, error)
	RemoveMember(ctx context.Context, teamID, studentID primitive.ObjectID) error
}

type ProjectDirectory interface {
	ByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.Project, error)
}

type RequirementDirectory interface {
	ByProjects(ctx context.Context, projectIDs []primitive.ObjectID) ([]models.Requirement, error)
	PullAssignee(ctx context.Context, ids []primitive.ObjectID, studentID primitive.ObjectID) error
}

// Reconciler repairs the team-membership invariant: a student may only
// stay on teams whose class the student is still enrolled in. It runs
// lazily when the account view loads, not as a background sweep.
type Reconciler struct {
	classes      ClassDirectory
	teams        TeamDirectory
	projects     ProjectDirectory
	requirements RequirementDirectory
}

func NewReconciler(classes ClassDirectory, teams TeamDirectory, projects ProjectDirectory, requirements RequirementDirectory) *Reconciler {
	return &Reconciler{
		classes:      classes,
		teams:        teams,
		projects:     projects,
		requirements: requirements,
	}
}

// Reconcile removes the student from every team whose associated class
// the student is no longer enrolled in, and unassigns the student from
// all requirements under those teams' projects. It returns the teams
// the student was removed from.
func (r *Reconciler) Reconcile(ctx context.Context, studentID primitive.ObjectID) ([]models.Team, error) {
	classes, err := r.classes.ForStudent(ctx, studentID)

	if err != nil {
		return nil, err
	}

	teams, err := r.teams.ForStudent(ctx, studentID)

	if err != nil {
		return nil, err
	}

	enrolled := make(map[primitive.ObjectID]bool, len(classes))

	for _, class := range classes {
		enrolled[class.ID] = true
	}

	var removed []models.Team

	for _, team := range teams {
		if enrolled[team.AssociatedClass] {
			continue
		}

		if err := r.teams.RemoveMember(ctx, team.ID, studentID); err != nil {
			return removed, err
		}

		if err := r.Unassign(ctx, studentID, team.ID); err != nil {
			return removed, err
		}

		removed = append(removed, team)
	}

	return removed, nil
}

// Unassign strips the student from the assignee lists of every
// requirement under the team's projects. The requirement fetch is one
// batched query and the updates go out as one bulk write.
func (r *Reconciler) Unassign(ctx context.Context, studentID, teamID primitive.ObjectID) error {
	projects, err := r.projects.ByTeam(ctx, teamID)

	if err != nil {
		return err
	}

	if len(projects) == 0 {
		return nil
	}

	projectIDs := make([]primitive.ObjectID, 0, len(projects))

	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	reqs, err := r.requirements.ByProjects(ctx, projectIDs)

	if err != nil {
		return err
	}

	var assigned []primitive.ObjectID

	for _, req := range reqs {
		if req.HasAssignee(studentID) {
			assigned = append(assigned, req.ID)
		}
	}

	if len(assigned) == 0 {
		return nil
	}

	return r.requirements.PullAssignee(ctx, assigned, studentID)
}

// GuardJoin rejects a join that would violate the membership rules:
// the student must be enrolled in the team's class and must not already
// be on another team of that class.
func (r *Reconciler) GuardJoin(ctx context.Context, studentID primitive.ObjectID, team *models.Team) error {
	classes, err := r.classes.ForStudent(ctx, studentID)

	if err != nil {
		return err
	}

	enrolled := false

	for _, class := range classes {
		if class.ID == team.AssociatedClass {
			enrolled = true
			break
		}
	}

	if !enrolled {
		return apperrors.Validationf("you must be enrolled in the class before joining one of its teams")
	}

	teams, err := r.teams.ForStudent(ctx, studentID)

	if err != nil {
		return err
	}

	for _, existing := range teams {
		if existing.ID == team.ID {
			return apperrors.Conflictf("you are already a member of this team")
		}

		if existing.AssociatedClass == team.AssociatedClass {
			return apperrors.Conflictf("you are already enrolled in a team for this class")
		}
	}

	return nil
}
