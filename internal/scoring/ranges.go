package scoring

import "math"

// Score range labels on the 100-point scale.
var totalRanges = [5]string{"0-20", "21-40", "41-60", "61-80", "81-100"}

// Score range labels on the 5-point module scale.
var moduleRanges = [5]string{"0-1", "1-2", "2-3", "3-4", "4-5"}

// Level labels, lowest first.
const (
	LevelBeginner     = "初级"
	LevelEntry        = "入门"
	LevelIntermediate = "中级"
	LevelAdvanced     = "高级"
	LevelExpert       = "专家"
)

func percentage(score, maxScore float64) float64 {
	if maxScore <= 0 {
		return 0
	}
	p := score / maxScore * 100
	if math.IsNaN(p) {
		return 0
	}
	return p
}

// ScoreRange buckets score into one of five 20%-wide ranges and returns its label.
// A maxScore of 100 selects the total-score labels, anything else the module labels.
// A full score lands in the last bucket.
func ScoreRange(score, maxScore float64) string {
	labels := moduleRanges
	if maxScore == TotalScoreScale {
		labels = totalRanges
	}

	idx := 0
	if p := percentage(score, maxScore); p > 0 {
		idx = int(math.Floor(math.Min(p, 100) / 20))
	}
	if idx > len(labels)-1 {
		idx = len(labels) - 1
	}
	return labels[idx]
}

// TotalRanges returns the range labels used for the overall score.
func TotalRanges() []string {
	return append([]string(nil), totalRanges[:]...)
}

// ModuleRanges returns the range labels used for module scores.
func ModuleRanges() []string {
	return append([]string(nil), moduleRanges[:]...)
}

// ScoreLevel classifies score for display.
func ScoreLevel(score, maxScore float64) string {
	p := percentage(score, maxScore)
	switch {
	case p >= 80:
		return LevelExpert
	case p >= 60:
		return LevelAdvanced
	case p >= 40:
		return LevelIntermediate
	case p >= 20:
		return LevelEntry
	default:
		return LevelBeginner
	}
}
