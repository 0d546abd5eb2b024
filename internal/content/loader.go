// Package content loads the question bank and suggestion table the scorer works from.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
)

//go:embed data/*.json
var dataFS embed.FS

const (
	defaultBankPath        = "data/questions.json"
	defaultSuggestionsPath = "data/suggestions.json"
)

// Content is the read-only material shared by every scoring request.
type Content struct {
	Bank        scoring.Bank
	Suggestions scoring.SuggestionTable
}

// Load reads both documents. Empty paths fall back to the embedded defaults.
func Load(bankPath, suggestionsPath string) (*Content, error) {
	bank, err := LoadBank(bankPath)
	if err != nil {
		return nil, err
	}
	table, err := LoadSuggestions(suggestionsPath)
	if err != nil {
		return nil, err
	}
	return &Content{Bank: bank, Suggestions: table}, nil
}

// LoadBank reads and validates a question bank file, or the embedded bank when path is empty.
func LoadBank(path string) (scoring.Bank, error) {
	data, err := readDocument(path, defaultBankPath)
	if err != nil {
		return nil, err
	}
	return ParseBank(data)
}

// LoadSuggestions reads and validates a suggestion table file, or the embedded table when path
// is empty.
func LoadSuggestions(path string) (scoring.SuggestionTable, error) {
	data, err := readDocument(path, defaultSuggestionsPath)
	if err != nil {
		return scoring.SuggestionTable{}, err
	}
	return ParseSuggestions(data)
}

// ParseBank validates raw JSON against the bank schema and the scoring rules.
func ParseBank(data []byte) (scoring.Bank, error) {
	if err := validateAgainstSchema(bankSchemaPath, "question bank", data); err != nil {
		return nil, err
	}

	var bank scoring.Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return bank, nil
}

// ParseSuggestions validates raw JSON against the suggestion table schema.
func ParseSuggestions(data []byte) (scoring.SuggestionTable, error) {
	if err := validateAgainstSchema(suggestionsSchemaPath, "suggestion table", data); err != nil {
		return scoring.SuggestionTable{}, err
	}

	var table scoring.SuggestionTable
	if err := json.Unmarshal(data, &table); err != nil {
		return scoring.SuggestionTable{}, fmt.Errorf("failed to parse suggestion table: %w", err)
	}
	return table, nil
}

func readDocument(path, embedded string) ([]byte, error) {
	if path == "" {
		return dataFS.ReadFile(embedded)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
