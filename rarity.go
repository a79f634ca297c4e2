package pixelcat

import (
	"path/filepath"

	"gonum.org/v1/gonum/stat"
)

// RarityReportFilename is written next to the index after a run.
const RarityReportFilename = "rarity_report.json"

// ItemScore is the rarity score of one generated item. The score is
// the sum of inverse trait-value frequencies across the item's
// attributes, so rarer trait values push the score up.
type ItemScore struct {
	Edition int     `json:"edition"`
	Score   float64 `json:"score"`
}

// RarityReport summarizes the trait distribution of a finished run.
type RarityReport struct {
	RunID       string                    `json:"run_id"`
	Items       int                       `json:"items"`
	TraitCounts map[string]map[string]int `json:"trait_counts"`
	Scores      []ItemScore               `json:"scores"`
	MeanScore   float64                   `json:"mean_score"`
	ScoreStdDev float64                   `json:"score_std_dev"`
}

// BuildRarityReport computes trait-value frequencies and per-item
// rarity scores over a run's index, in edition order.
func BuildRarityReport(runID string, index []Metadata) *RarityReport {
	counts := make(map[string]map[string]int)
	for _, m := range index {
		for _, a := range m.Attributes {
			if counts[a.TraitType] == nil {
				counts[a.TraitType] = make(map[string]int)
			}
			counts[a.TraitType][a.Value]++
		}
	}

	report := &RarityReport{
		RunID:       runID,
		Items:       len(index),
		TraitCounts: counts,
		Scores:      make([]ItemScore, 0, len(index)),
	}
	if len(index) == 0 {
		return report
	}

	n := float64(len(index))
	raw := make([]float64, 0, len(index))
	for _, m := range index {
		score := 0.0
		for _, a := range m.Attributes {
			freq := float64(counts[a.TraitType][a.Value]) / n
			score += 1.0 / freq
		}
		report.Scores = append(report.Scores, ItemScore{Edition: m.Edition, Score: score})
		raw = append(raw, score)
	}
	report.MeanScore = stat.Mean(raw, nil)
	if len(raw) > 1 {
		report.ScoreStdDev = stat.StdDev(raw, nil)
	}
	return report
}

// WriteRarityReport builds and writes the rarity report for a run.
func WriteRarityReport(outputDir, runID string, index []Metadata) error {
	return writeJSON(filepath.Join(outputDir, RarityReportFilename), BuildRarityReport(runID, index))
}
