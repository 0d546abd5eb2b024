package services

import (
	"github.com/SAP-F-2025/employability-assessment/internal/content"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
)

type contentService struct {
	content *content.Content
}

func NewContentService(c *content.Content) ContentService {
	return &contentService{content: c}
}

func (s *contentService) Questions() scoring.Bank {
	return s.content.Bank
}

func (s *contentService) Suggestions() scoring.SuggestionTable {
	return s.content.Suggestions
}

// Score computes a full evaluation for a complete answer set
func (s *contentService) Score(answers scoring.AnswerSet) (*models.Evaluation, error) {
	result, err := scoring.ComputeScores(s.content.Bank, answers)
	if err != nil {
		return nil, err
	}
	evaluation := s.Evaluate(result)
	return &evaluation, nil
}

func (s *contentService) Evaluate(result scoring.Result) models.Evaluation {
	return models.Evaluation{
		Result:      result,
		Suggestions: scoring.ResolveSuggestions(result, s.content.Suggestions),
		Levels:      scoring.LevelsFor(result),
	}
}

func (s *contentService) Progress(answers scoring.AnswerSet) scoring.Progress {
	return scoring.ComputeProgress(s.content.Bank, answers)
}
