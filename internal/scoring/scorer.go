package scoring

import (
	"fmt"
	"math"
)

// ModuleScoreScale is the upper bound of a normalized module score.
const ModuleScoreScale = 5.0

// TotalScoreScale is the upper bound of the overall score.
const TotalScoreScale = 100.0

// ModuleScore is the weighted accumulation for one module. Max is the highest Raw the
// contributing options could have produced.
type ModuleScore struct {
	Raw float64 `json:"raw"`
	Max float64 `json:"max"`
}

// Result is the outcome of scoring a complete answer set. It is returned by value and
// treated as immutable by every consumer.
type Result struct {
	ModuleScores map[Module]float64 `json:"moduleScores"`
	TotalScore   int                `json:"totalScore"`
	Answers      AnswerSet          `json:"answers"`
}

// Aggregate sums weighted option scores per module.
//
// For every module present in the selected option's score map, score*weight is added to that
// module's raw total and MaxOptionScore*weight to its max. Modules the option does not mention
// are left untouched, even when the question itself belongs to them.
func Aggregate(bank Bank, answers AnswerSet) (map[Module]ModuleScore, error) {
	if err := bank.checkAnswers(answers); err != nil {
		return nil, err
	}

	acc := make(map[Module]ModuleScore, len(Modules))
	for _, m := range Modules {
		acc[m] = ModuleScore{}
	}

	for i, q := range bank {
		opt := q.Options[answers[i]]
		for m, s := range opt.Scores {
			ms, ok := acc[m]
			if !ok {
				continue
			}
			ms.Raw += s * q.Weight
			ms.Max += MaxOptionScore * q.Weight
			acc[m] = ms
		}
	}

	return acc, nil
}

// Normalize rescales an accumulated module score onto the 0-5 range.
func Normalize(ms ModuleScore) (float64, error) {
	if ms.Max <= 0 {
		return 0, ErrUnreachableModule
	}
	return ms.Raw / ms.Max * ModuleScoreScale, nil
}

// TotalScore combines normalized module scores into the 0-100 overall score using the fixed
// module weights, rounding half up.
func TotalScore(normalized map[Module]float64) int {
	var total float64
	for _, m := range Modules {
		total += normalized[m] / ModuleScoreScale * TotalScoreScale * m.Weight()
	}
	return int(math.Floor(total + 0.5))
}

// ComputeScores scores a complete answer set against the bank.
func ComputeScores(bank Bank, answers AnswerSet) (Result, error) {
	acc, err := Aggregate(bank, answers)
	if err != nil {
		return Result{}, err
	}

	normalized := make(map[Module]float64, len(Modules))
	for _, m := range Modules {
		n, err := Normalize(acc[m])
		if err != nil {
			return Result{}, fmt.Errorf("%w: %s", err, m)
		}
		normalized[m] = n
	}

	return Result{
		ModuleScores: normalized,
		TotalScore:   TotalScore(normalized),
		Answers:      answers.Clone(),
	}, nil
}
