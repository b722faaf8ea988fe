package progress

import (
	"testing"

	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func req(sprint, prog *int) models.Requirement {
	return models.Requirement{SprintNo: sprint, Progress: prog}
}

func TestSprintAverages(t *testing.T) {
	t.Run("averages per sprint", func(t *testing.T) {
		reqs := []models.Requirement{
			req(intp(1), intp(100)),
			req(intp(1), intp(50)),
			req(intp(2), intp(30)),
		}

		avgs := SprintAverages(reqs)

		assert.Equal(t, map[int]float64{1: 75, 2: 30}, avgs)
	})

	t.Run("nil progress counts toward the denominator", func(t *testing.T) {
		reqs := []models.Requirement{
			req(intp(1), intp(100)),
			req(intp(1), nil),
		}

		avgs := SprintAverages(reqs)

		assert.Equal(t, 50.0, avgs[1])
	})

	t.Run("sprint with no progress values is omitted", func(t *testing.T) {
		reqs := []models.Requirement{
			req(intp(1), intp(40)),
			req(intp(2), nil),
			req(intp(2), nil),
		}

		avgs := SprintAverages(reqs)

		assert.Contains(t, avgs, 1)
		assert.NotContains(t, avgs, 2)
	})

	t.Run("requirements without a sprint are ignored", func(t *testing.T) {
		reqs := []models.Requirement{
			req(nil, intp(90)),
		}

		assert.Empty(t, SprintAverages(reqs))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		reqs := []models.Requirement{
			req(intp(1), intp(33)),
			req(intp(1), intp(33)),
			req(intp(1), intp(34)),
		}

		assert.Equal(t, 33.33, SprintAverages(reqs)[1])
	})
}

func TestOverall(t *testing.T) {
	t.Run("each sprint weighs equally", func(t *testing.T) {
		// One finished requirement in sprint 1 against three untouched
		// ones in sprint 2. A flat mean would say 25; balancing the
		// sprints says 50.
		reqs := []models.Requirement{
			req(intp(1), intp(100)),
			req(intp(2), intp(0)),
			req(intp(2), intp(0)),
			req(intp(2), intp(0)),
		}

		assert.Equal(t, 50.0, Overall(reqs))
	})

	t.Run("a sprint of untouched requirements still counts", func(t *testing.T) {
		// Sprint 2 has no progress recorded anywhere. It is omitted
		// from the per-sprint report, but at the project level it
		// averages to 0 and halves the result.
		reqs := []models.Requirement{
			req(intp(1), intp(100)),
			req(intp(2), nil),
		}

		assert.Equal(t, 50.0, Overall(reqs))
	})

	t.Run("all-nil sprint weighs against finished ones", func(t *testing.T) {
		reqs := []models.Requirement{
			req(intp(1), intp(100)),
			req(intp(2), nil),
			req(intp(2), nil),
			req(intp(3), intp(40)),
		}

		// Sprint means are 100, 0 and 40.
		assert.Equal(t, 46.67, Overall(reqs))
	})

	t.Run("falls back to flat mean only when nothing has a sprint", func(t *testing.T) {
		reqs := []models.Requirement{
			req(nil, intp(20)),
			req(nil, intp(40)),
			req(nil, nil),
		}

		assert.Equal(t, 20.0, Overall(reqs))
	})

	t.Run("empty input is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Overall(nil))
		assert.Equal(t, 0.0, Overall([]models.Requirement{}))
	})

	t.Run("result is rounded", func(t *testing.T) {
		reqs := []models.Requirement{
			req(intp(1), intp(33)),
			req(intp(2), intp(33)),
			req(intp(3), intp(34)),
		}

		assert.Equal(t, 33.33, Overall(reqs))
	})

	t.Run("sprintless requirements do not drag down a sprint result", func(t *testing.T) {
		reqs := []models.Requirement{
			req(intp(1), intp(80)),
			req(nil, intp(0)),
		}

		assert.Equal(t, 80.0, Overall(reqs))
	})
}
