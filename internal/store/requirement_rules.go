package store

import (
	"github.com/studentwork-dev/crewbase/internal/apperrors"
	"github.com/studentwork-dev/crewbase/internal/models"
)

// validateRequirement enforces the write-time invariants on a
// requirement document: non-empty description, progress within
// [0, 100], and completion only with a sprint assigned. Progress of
// exactly 100 and the completion flag imply each other, so the pair is
// normalized here rather than trusted from the caller.
func validateRequirement(req *models.Requirement) error {
	if req.Description == "" {
		return apperrors.Validationf("requirement description cannot be empty")
	}

	if req.Progress != nil && (*req.Progress < 0 || *req.Progress > 100) {
		return apperrors.Validationf("progress must be between 0 and 100")
	}

	if req.Progress != nil && *req.Progress == 100 {
		req.IsComplete = true
	}

	if req.IsComplete {
		if req.SprintNo == nil {
			return apperrors.Validationf("requirement cannot be completed without a sprint number")
		}

		progress := 100
		req.Progress = &progress
	}

	return nil
}

// applyToggle flips the completion flag in place.
//
// Completing requires a sprint number and pins progress to 100.
// Un-completing resets progress to 0 only when it is exactly 100;
// partial progress is left untouched. That asymmetry is deliberate and
// matched by the toggle tests.
func applyToggle(req *models.Requirement) error {
	if req.IsComplete {
		req.IsComplete = false

		if req.Progress != nil && *req.Progress == 100 {
			zero := 0
			req.Progress = &zero
		}

		return nil
	}

	if req.SprintNo == nil {
		return apperrors.Validationf("requirement cannot be completed without a sprint number")
	}

	req.IsComplete = true
	full := 100
	req.Progress = &full

	return nil
}
