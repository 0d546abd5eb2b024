package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/SAP-F-2025/employability-assessment/internal/content"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"github.com/SAP-F-2025/employability-assessment/internal/services"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer file offline",
	Long:  "Reads an answer set as JSON keyed by question index ({\"answers\": {\"0\": 2, ...}} or a bare {\"0\": 2, ...} map) and prints the evaluation.",
	RunE:  runScore,
}

var (
	scoreAnswers     string
	scoreBank        string
	scoreSuggestions string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreAnswers, "answers", "a", "", "Path to answers JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreBank, "bank", "", "Path to question bank JSON (defaults to the built-in bank)")
	scoreCmd.Flags().StringVar(&scoreSuggestions, "suggestions", "", "Path to suggestion table JSON (defaults to the built-in table)")

	if err := scoreCmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	answers, err := readAnswers(scoreAnswers)
	if err != nil {
		return err
	}

	c, err := content.Load(scoreBank, scoreSuggestions)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	evaluation, err := services.NewContentService(c).Score(answers)
	if err != nil {
		return fmt.Errorf("failed to score answers: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(evaluation)
}

func readAnswers(path string) (scoring.AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var wrapped models.ScoreRequest
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Answers) > 0 {
		return wrapped.Answers, nil
	}

	var bare scoring.AnswerSet
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers JSON: %w", err)
	}
	if len(bare) == 0 {
		return nil, fmt.Errorf("answers file %s contains no answers", path)
	}
	return bare, nil
}
