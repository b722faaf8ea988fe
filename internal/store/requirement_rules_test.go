package store

import (
	"testing"

	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestValidateRequirement(t *testing.T) {
	t.Run("description is required", func(t *testing.T) {
		err := validateRequirement(&models.Requirement{})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("progress must stay within bounds", func(t *testing.T) {
		err := validateRequirement(&models.Requirement{Description: "x", Progress: intp(101)})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		err = validateRequirement(&models.Requirement{Description: "x", Progress: intp(-1)})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("full progress implies completion", func(t *testing.T) {
		req := &models.Requirement{Description: "x", SprintNo: intp(2), Progress: intp(100)}

		require.NoError(t, validateRequirement(req))
		assert.True(t, req.IsComplete)
	})

	t.Run("completion without a sprint is rejected", func(t *testing.T) {
		req := &models.Requirement{Description: "x", IsComplete: true}

		err := validateRequirement(req)
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		// The same applies when completion is implied by progress.
		req = &models.Requirement{Description: "x", Progress: intp(100)}
		err = validateRequirement(req)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("completion pins progress to 100", func(t *testing.T) {
		req := &models.Requirement{Description: "x", SprintNo: intp(1), IsComplete: true, Progress: intp(40)}

		require.NoError(t, validateRequirement(req))
		require.NotNil(t, req.Progress)
		assert.Equal(t, 100, *req.Progress)
	})

	t.Run("nil progress stays nil on an open requirement", func(t *testing.T) {
		req := &models.Requirement{Description: "x", SprintNo: intp(1)}

		require.NoError(t, validateRequirement(req))
		assert.Nil(t, req.Progress)
	})
}

func TestApplyToggle(t *testing.T) {
	t.Run("completing needs a sprint number", func(t *testing.T) {
		req := &models.Requirement{Description: "x"}

		err := applyToggle(req)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.False(t, req.IsComplete)
	})

	t.Run("completing sets progress to 100", func(t *testing.T) {
		req := &models.Requirement{Description: "x", SprintNo: intp(3), Progress: intp(60)}

		require.NoError(t, applyToggle(req))
		assert.True(t, req.IsComplete)
		require.NotNil(t, req.Progress)
		assert.Equal(t, 100, *req.Progress)
	})

	t.Run("un-completing resets progress only from exactly 100", func(t *testing.T) {
		req := &models.Requirement{Description: "x", SprintNo: intp(3), IsComplete: true, Progress: intp(100)}

		require.NoError(t, applyToggle(req))
		assert.False(t, req.IsComplete)
		require.NotNil(t, req.Progress)
		assert.Equal(t, 0, *req.Progress)
	})

	t.Run("partial progress survives un-completing", func(t *testing.T) {
		req := &models.Requirement{Description: "x", SprintNo: intp(3), IsComplete: true, Progress: intp(60)}

		require.NoError(t, applyToggle(req))
		assert.False(t, req.IsComplete)
		require.NotNil(t, req.Progress)
		assert.Equal(t, 60, *req.Progress)
	})

	t.Run("round trip from untouched lands on zero", func(t *testing.T) {
		req := &models.Requirement{Description: "x", SprintNo: intp(1)}

		require.NoError(t, applyToggle(req))
		require.NoError(t, applyToggle(req))

		assert.False(t, req.IsComplete)
		require.NotNil(t, req.Progress)
		assert.Equal(t, 0, *req.Progress)
	})
}
