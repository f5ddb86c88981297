package exam

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/tomas-kadlec/gazelab/pkg/utility/fixed"
)

// ProblemItem is a question that fewer students answered correctly
// than the grader's threshold allows, together with how the class
// distributed its answers over the five choices.
type ProblemItem struct {
	Question     int
	Distribution map[string]int
}

type Summary struct {
	N                  int
	TotalPoints        fixed.Point
	MeanPoints         fixed.Point
	MeanPercent        fixed.Point
	PointsStdDev       fixed.Point
	MinPoints          fixed.Point
	MaxPoints          fixed.Point
	Dropped            []int
	IncorrectThreshold float64
	ProblemItems       []ProblemItem
}

// Summarize computes class-level descriptive statistics and flags
// problem items. The standard deviation uses the n-1 denominator.
func (g *Grader) Summarize(results []Result) Summary {
	points := make([]fixed.Point, len(results))
	percents := make([]fixed.Point, len(results))
	for i, r := range results {
		points[i] = r.Points
		percents[i] = r.Percent
	}

	meanPoints := fixed.Mean(points)

	summary := Summary{
		N:                  len(results),
		TotalPoints:        g.TotalPoints(),
		MeanPoints:         meanPoints,
		MeanPercent:        fixed.Mean(percents),
		PointsStdDev:       fixed.SampleStdDev(points, meanPoints),
		MinPoints:          fixed.Min(points),
		MaxPoints:          fixed.Max(points),
		Dropped:            sortedDrops(g.drops),
		IncorrectThreshold: g.incorrectThreshold,
	}

	threshold := float64(len(results)) * g.incorrectThreshold
	for q := 1; q <= len(g.key); q++ {
		correct := 0
		distribution := make(map[string]int, len(Choices))
		for _, c := range Choices {
			distribution[string(c)] = 0
		}
		for _, r := range results {
			if q > len(r.Sheet.Answers) {
				continue
			}
			answer := r.Sheet.Answers[q-1]
			if _, ok := distribution[answer]; ok {
				distribution[answer]++
			}
			if answer == g.key[q-1] {
				correct++
			}
		}
		if float64(correct) < threshold {
			summary.ProblemItems = append(summary.ProblemItems, ProblemItem{
				Question:     q,
				Distribution: distribution,
			})
		}
	}

	return summary
}

func (s Summary) Print() {
	slog.Info("exam summary",
		"students", s.N,
		"total_points", s.TotalPoints,
		"mean_points", s.MeanPoints.Rescale(2),
		"mean_percent", fmt.Sprintf("%s%%", s.MeanPercent.Rescale(2)),
		"points_std_dev", s.PointsStdDev.Rescale(2),
		"min_points", s.MinPoints,
		"max_points", s.MaxPoints,
		"dropped_questions", len(s.Dropped),
		"problem_items", len(s.ProblemItems))
}

func sortedDrops(drops map[int]bool) []int {
	if len(drops) == 0 {
		return nil
	}
	sorted := make([]int, 0, len(drops))
	for q := range drops {
		sorted = append(sorted, q)
	}
	sort.Ints(sorted)
	return sorted
}
