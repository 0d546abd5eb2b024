package scoring

import "math"

// Progress summarizes how far a participant is through the questionnaire.
type Progress struct {
	TotalQuestions    int     `json:"totalQuestions"`
	AnsweredQuestions int     `json:"answeredQuestions"`
	CompletionRate    float64 `json:"completionRate"`
	CurrentModule     Module  `json:"currentModule,omitempty"`
	Complete          bool    `json:"complete"`
}

// ComputeProgress counts answered questions and reports the module of the first unanswered one.
// Answers for indices outside the bank are not counted. CompletionRate is a percentage with one
// decimal place.
func ComputeProgress(bank Bank, answers AnswerSet) Progress {
	p := Progress{TotalQuestions: len(bank)}
	for i, q := range bank {
		if _, ok := answers[i]; ok {
			p.AnsweredQuestions++
			continue
		}
		if p.CurrentModule == "" {
			p.CurrentModule = q.Module
		}
	}
	if p.TotalQuestions > 0 {
		rate := float64(p.AnsweredQuestions) / float64(p.TotalQuestions) * 100
		p.CompletionRate = math.Round(rate*10) / 10
	}
	p.Complete = p.TotalQuestions > 0 && p.AnsweredQuestions == p.TotalQuestions
	return p
}
