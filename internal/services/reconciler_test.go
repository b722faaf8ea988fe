package services

import (
	"context"
	"testing"

	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeClasses struct {
	byStudent map[primitive.ObjectID][]models.Class
}

func (f *fakeClasses) ForStudent(_ context.Context, studentID primitive.ObjectID) ([]models.Class, error) {
	return f.byStudent[studentID], nil
}

type fakeTeams struct {
	byStudent map[primitive.ObjectID][]models.Team
	removed   []primitive.ObjectID
}

func (f *fakeTeams) ForStudent(_ context.Context, studentID primitive.ObjectID) ([]models.Team, error) {
	return f.byStudent[studentID], nil
}

func (f *fakeTeams) RemoveMember(_ context.Context, teamID, _ primitive.ObjectID) error {
	f.removed = append(f.removed, teamID)

	return nil
}

type fakeProjects struct {
	byTeam map[primitive.ObjectID][]models.Project
}

func (f *fakeProjects) ByTeam(_ context.Context, teamID primitive.ObjectID) ([]models.Project, error) {
	return f.byTeam[teamID], nil
}

type fakeRequirements struct {
	byProject map[primitive.ObjectID][]models.Requirement
	pulled    []primitive.ObjectID
}

func (f *fakeRequirements) ByProjects(_ context.Context, projectIDs []primitive.ObjectID) ([]models.Requirement, error) {
	var out []models.Requirement

	for _, id := range projectIDs {
		out = append(out, f.byProject[id]...)
	}

	return out, nil
}

func (f *fakeRequirements) PullAssignee(_ context.Context, ids []primitive.ObjectID, _ primitive.ObjectID) error {
	f.pulled = append(f.pulled, ids...)

	return nil
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()
	student := primitive.NewObjectID()

	classA := models.Class{ID: primitive.NewObjectID(), Name: "CS 3300"}
	classB := models.Class{ID: primitive.NewObjectID(), Name: "CS 4400"}

	teamA := models.Team{ID: primitive.NewObjectID(), Name: "Alpha", AssociatedClass: classA.ID}
	teamB := models.Team{ID: primitive.NewObjectID(), Name: "Beta", AssociatedClass: classB.ID}

	projectB := models.Project{ID: primitive.NewObjectID(), AssociatedTeam: teamB.ID}

	assignedReq := models.Requirement{
		ID:        primitive.NewObjectID(),
		ProjectID: projectB.ID,
		Assignees: []primitive.ObjectID{student},
	}
	otherReq := models.Requirement{
		ID:        primitive.NewObjectID(),
		ProjectID: projectB.ID,
		Assignees: []primitive.ObjectID{primitive.NewObjectID()},
	}

	t.Run("drops teams whose class the student left", func(t *testing.T) {
		// Still enrolled in class A only; membership of team B must go,
		// along with the requirement assignment under team B's project.
		teams := &fakeTeams{byStudent: map[primitive.ObjectID][]models.Team{student: {teamA, teamB}}}
		reqs := &fakeRequirements{byProject: map[primitive.ObjectID][]models.Requirement{
			projectB.ID: {assignedReq, otherReq},
		}}

		r := NewReconciler(
			&fakeClasses{byStudent: map[primitive.ObjectID][]models.Class{student: {classA}}},
			teams,
			&fakeProjects{byTeam: map[primitive.ObjectID][]models.Project{teamB.ID: {projectB}}},
			reqs,
		)

		removed, err := r.Reconcile(ctx, student)
		require.NoError(t, err)

		require.Len(t, removed, 1)
		assert.Equal(t, teamB.ID, removed[0].ID)
		assert.Equal(t, []primitive.ObjectID{teamB.ID}, teams.removed)
		assert.Equal(t, []primitive.ObjectID{assignedReq.ID}, reqs.pulled)
	})

	t.Run("nothing to do when memberships line up", func(t *testing.T) {
		teams := &fakeTeams{byStudent: map[primitive.ObjectID][]models.Team{student: {teamA}}}

		r := NewReconciler(
			&fakeClasses{byStudent: map[primitive.ObjectID][]models.Class{student: {classA}}},
			teams,
			&fakeProjects{byTeam: map[primitive.ObjectID][]models.Project{}},
			&fakeRequirements{},
		)

		removed, err := r.Reconcile(ctx, student)
		require.NoError(t, err)
		assert.Empty(t, removed)
		assert.Empty(t, teams.removed)
	})
}

func TestUnassign(t *testing.T) {
	ctx := context.Background()
	student := primitive.NewObjectID()
	team := primitive.NewObjectID()

	t.Run("skips the bulk write when nothing is assigned", func(t *testing.T) {
		project := models.Project{ID: primitive.NewObjectID(), AssociatedTeam: team}
		reqs := &fakeRequirements{byProject: map[primitive.ObjectID][]models.Requirement{
			project.ID: {{ID: primitive.NewObjectID(), ProjectID: project.ID}},
		}}

		r := NewReconciler(
			&fakeClasses{},
			&fakeTeams{},
			&fakeProjects{byTeam: map[primitive.ObjectID][]models.Project{team: {project}}},
			reqs,
		)

		require.NoError(t, r.Unassign(ctx, student, team))
		assert.Empty(t, reqs.pulled)
	})

	t.Run("teams without projects are a no-op", func(t *testing.T) {
		reqs := &fakeRequirements{}

		r := NewReconciler(&fakeClasses{}, &fakeTeams{}, &fakeProjects{}, reqs)

		require.NoError(t, r.Unassign(ctx, student, team))
		assert.Empty(t, reqs.pulled)
	})
}

func TestGuardJoin(t *testing.T) {
	ctx := context.Background()
	student := primitive.NewObjectID()

	class := models.Class{ID: primitive.NewObjectID(), Name: "CS 3300"}
	team := models.Team{ID: primitive.NewObjectID(), Name: "Alpha", AssociatedClass: class.ID}

	t.Run("requires enrollment in the team's class", func(t *testing.T) {
		r := NewReconciler(&fakeClasses{}, &fakeTeams{}, &fakeProjects{}, &fakeRequirements{})

		err := r.GuardJoin(ctx, student, &team)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects joining the same team twice", func(t *testing.T) {
		r := NewReconciler(
			&fakeClasses{byStudent: map[primitive.ObjectID][]models.Class{student: {class}}},
			&fakeTeams{byStudent: map[primitive.ObjectID][]models.Team{student: {team}}},
			&fakeProjects{},
			&fakeRequirements{},
		)

		err := r.GuardJoin(ctx, student, &team)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects a second team in the same class", func(t *testing.T) {
		other := models.Team{ID: primitive.NewObjectID(), Name: "Beta", AssociatedClass: class.ID}

		r := NewReconciler(
			&fakeClasses{byStudent: map[primitive.ObjectID][]models.Class{student: {class}}},
			&fakeTeams{byStudent: map[primitive.ObjectID][]models.Team{student: {other}}},
			&fakeProjects{},
			&fakeRequirements{},
		)

		err := r.GuardJoin(ctx, student, &team)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("allows a clean join", func(t *testing.T) {
		r := NewReconciler(
			&fakeClasses{byStudent: map[primitive.ObjectID][]models.Class{student: {class}}},
			&fakeTeams{},
			&fakeProjects{},
			&fakeRequirements{},
		)

		assert.NoError(t, r.GuardJoin(ctx, student, &team))
	})
}
