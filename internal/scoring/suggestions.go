package scoring

// Suggestion is the advice shown for a score range.
type Suggestion struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Actions []string `json:"actions,omitempty"`
}

// SuggestionTable holds advice keyed by score range label, for the overall score and for each
// module.
type SuggestionTable struct {
	TotalScore map[string]Suggestion            `json:"totalScore"`
	Modules    map[Module]map[string]Suggestion `json:"modules"`
}

// Total looks up the overall-score suggestion for a range label.
func (t SuggestionTable) Total(rangeLabel string) (Suggestion, bool) {
	s, ok := t.TotalScore[rangeLabel]
	return s, ok
}

// Module looks up the suggestion for a module's range label.
func (t SuggestionTable) Module(m Module, rangeLabel string) (Suggestion, bool) {
	byRange, ok := t.Modules[m]
	if !ok {
		return Suggestion{}, false
	}
	s, ok := byRange[rangeLabel]
	return s, ok
}

// MissingEntries lists every range without advice, as "totalScore/<range>" or
// "<module>/<range>". Lookups for these ranges resolve as not found.
func (t SuggestionTable) MissingEntries() []string {
	var missing []string
	for _, r := range TotalRanges() {
		if _, ok := t.Total(r); !ok {
			missing = append(missing, "totalScore/"+r)
		}
	}
	for _, m := range Modules {
		for _, r := range ModuleRanges() {
			if _, ok := t.Module(m, r); !ok {
				missing = append(missing, string(m)+"/"+r)
			}
		}
	}
	return missing
}

// ResolvedSuggestion is the outcome of a table lookup. Suggestion is nil when Found is false.
type ResolvedSuggestion struct {
	Range      string      `json:"range"`
	Found      bool        `json:"found"`
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}

// Suggestions groups the overall and per-module lookups for one result.
type Suggestions struct {
	Total   ResolvedSuggestion            `json:"total"`
	Modules map[Module]ResolvedSuggestion `json:"modules"`
}

func resolved(rangeLabel string, s Suggestion, ok bool) ResolvedSuggestion {
	r := ResolvedSuggestion{Range: rangeLabel, Found: ok}
	if ok {
		r.Suggestion = &s
	}
	return r
}

// ResolveSuggestions maps the result's scores to range labels and fetches the matching advice.
// Missing table entries yield a not-found lookup rather than an error.
func ResolveSuggestions(result Result, table SuggestionTable) Suggestions {
	totalRange := ScoreRange(float64(result.TotalScore), TotalScoreScale)
	s, ok := table.Total(totalRange)

	out := Suggestions{
		Total:   resolved(totalRange, s, ok),
		Modules: make(map[Module]ResolvedSuggestion, len(result.ModuleScores)),
	}
	for m, score := range result.ModuleScores {
		r := ScoreRange(score, ModuleScoreScale)
		s, ok := table.Module(m, r)
		out.Modules[m] = resolved(r, s, ok)
	}
	return out
}

// Levels labels every module score and the total for display.
type Levels struct {
	Total   string            `json:"total"`
	Modules map[Module]string `json:"modules"`
}

// LevelsFor computes the display levels of a result.
func LevelsFor(result Result) Levels {
	lv := Levels{
		Total:   ScoreLevel(float64(result.TotalScore), TotalScoreScale),
		Modules: make(map[Module]string, len(result.ModuleScores)),
	}
	for m, score := range result.ModuleScores {
		lv.Modules[m] = ScoreLevel(score, ModuleScoreScale)
	}
	return lv
}
