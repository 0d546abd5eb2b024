package scoring

import (
	"errors"
	"fmt"
	"math"
)

// MaxOptionScore is the upper bound of a single option's contribution to a module.
const MaxOptionScore = 5.0

// Option is one selectable answer and the score it contributes to each module it touches.
type Option struct {
	Text   string             `json:"text"`
	Scores map[Module]float64 `json:"scores"`
}

// Question is a weighted multiple-choice item belonging to a module.
type Question struct {
	ID      int      `json:"id"`
	Module  Module   `json:"module"`
	Text    string   `json:"question"`
	Weight  float64  `json:"weight"`
	Options []Option `json:"options"`
}

// Bank is the ordered question list. Answer indices refer to positions in it.
type Bank []Question

// AnswerSet maps a question index to the selected option index.
type AnswerSet map[int]int

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Validate checks the structural rules every bank must satisfy before it is used for scoring.
// All problems are reported, joined, and wrapped with ErrInvalidBank.
func (b Bank) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidBank)
	}

	var problems []error
	// A module is guaranteed when some question scores it in every option, so any complete
	// answer set gives it a positive max.
	guaranteed := make(map[Module]bool, len(Modules))

	for i, q := range b {
		if !q.Module.IsValid() {
			problems = append(problems, fmt.Errorf("question %d: unknown module %q", i, q.Module))
		}
		if !(q.Weight > 0) || math.IsInf(q.Weight, 0) {
			problems = append(problems, fmt.Errorf("question %d: weight must be positive, got %v", i, q.Weight))
		}
		if len(q.Options) < 2 {
			problems = append(problems, fmt.Errorf("question %d: needs at least 2 options, got %d", i, len(q.Options)))
		}
		for j, opt := range q.Options {
			if len(opt.Scores) == 0 {
				problems = append(problems, fmt.Errorf("question %d option %d: no module scores", i, j))
			}
			for m, s := range opt.Scores {
				if !m.IsValid() {
					problems = append(problems, fmt.Errorf("question %d option %d: unknown module %q", i, j, m))
					continue
				}
				if s < 0 || s > MaxOptionScore || math.IsNaN(s) {
					problems = append(problems, fmt.Errorf("question %d option %d: score %v for %s outside [0,%v]", i, j, s, m, MaxOptionScore))
				}
			}
		}
		for _, m := range Modules {
			if len(q.Options) > 0 && scoredByEveryOption(q, m) {
				guaranteed[m] = true
			}
		}
	}

	for _, m := range Modules {
		if !guaranteed[m] {
			problems = append(problems, fmt.Errorf("module %s is not scored by every option of any question", m))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBank, errors.Join(problems...))
	}
	return nil
}

func scoredByEveryOption(q Question, m Module) bool {
	for _, opt := range q.Options {
		if _, ok := opt.Scores[m]; !ok {
			return false
		}
	}
	return true
}

// checkAnswers rejects answer sets that do not select exactly one valid option per question.
func (b Bank) checkAnswers(answers AnswerSet) error {
	for i, q := range b {
		selected, ok := answers[i]
		if !ok {
			return fmt.Errorf("%w: question %d", ErrMissingAnswer, i)
		}
		if selected < 0 || selected >= len(q.Options) {
			return fmt.Errorf("%w: question %d selects option %d of %d", ErrInvalidOptionIndex, i, selected, len(q.Options))
		}
	}
	for idx := range answers {
		if idx < 0 || idx >= len(b) {
			return fmt.Errorf("%w: index %d", ErrUnknownQuestion, idx)
		}
	}
	return nil
}
