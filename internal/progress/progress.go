// Package progress computes requirement completion percentages for
// projects and sprints.
package progress

import (
	"math"

	"github.com/studentwork-dev/crewbase/internal/models"
)

// SprintAverages groups requirements by assigned sprint number and
// returns the mean progress of each sprint, rounded to 2 decimals.
// A requirement with no recorded progress contributes 0 but still
// counts toward its sprint's denominator. Sprints where no requirement
// carries a progress value at all are omitted.
func SprintAverages(reqs []models.Requirement) map[int]float64 {
	totals := make(map[int]float64)
	counts := make(map[int]int)
	hasValue := make(map[int]bool)

	for _, req := range reqs {
		if req.SprintNo == nil {
			continue
		}

		sprint := *req.SprintNo
		counts[sprint]++

		if req.Progress != nil {
			totals[sprint] += float64(*req.Progress)
			hasValue[sprint] = true
		}
	}

	averages := make(map[int]float64, len(counts))

	for sprint, count := range counts {
		if !hasValue[sprint] {
			continue
		}

		averages[sprint] = round2(totals[sprint] / float64(count))
	}

	return averages
}

// Overall computes a project's completion percentage. Each sprint
// counts equally toward the result regardless of how many requirements
// it holds, so a sprint of many small requirements cannot outweigh a
// sprint of few large ones. Unlike SprintAverages, every sprint with a
// requirement participates here: a sprint whose requirements all lack
// progress averages to 0 and still drags the mean down. Only when no
// requirement carries a sprint number does the computation fall back to
// a flat mean over all requirements. The result is always in [0, 100],
// rounded to 2 decimals.
func Overall(reqs []models.Requirement) float64 {
	if len(reqs) == 0 {
		return 0
	}

	totals := make(map[int]float64)
	counts := make(map[int]int)

	for _, req := range reqs {
		if req.SprintNo == nil {
			continue
		}

		sprint := *req.SprintNo
		counts[sprint]++

		if req.Progress != nil {
			totals[sprint] += float64(*req.Progress)
		}
	}

	if len(counts) == 0 {
		var total float64

		for _, req := range reqs {
			if req.Progress != nil {
				total += float64(*req.Progress)
			}
		}

		return round2(total / float64(len(reqs)))
	}

	var total float64

	for sprint, count := range counts {
		total += totals[sprint] / float64(count)
	}

	return round2(total / float64(len(counts)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
