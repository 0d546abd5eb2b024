package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() SuggestionTable {
	return SuggestionTable{
		TotalScore: map[string]Suggestion{
			"61-80": {Title: "良好", Content: "整体竞争力良好"},
		},
		Modules: map[Module]map[string]Suggestion{
			ModuleCreativity: {
				"4-5": {Title: "创造力突出", Actions: []string{"参加创新竞赛"}},
			},
			ModuleTechnical: {
				"2-3": {Title: "技术能力中等"},
			},
		},
	}
}

func TestResolveSuggestions(t *testing.T) {
	result := Result{
		TotalScore: 66,
		ModuleScores: map[Module]float64{
			ModuleCreativity: 5,
			ModuleTechnical:  2.4,
			ModuleExecution:  1,
		},
	}

	got := ResolveSuggestions(result, testTable())

	assert.Equal(t, "61-80", got.Total.Range)
	require.True(t, got.Total.Found)
	assert.Equal(t, "良好", got.Total.Suggestion.Title)

	creativity := got.Modules[ModuleCreativity]
	assert.Equal(t, "4-5", creativity.Range)
	require.True(t, creativity.Found)
	assert.Equal(t, []string{"参加创新竞赛"}, creativity.Suggestion.Actions)

	technical := got.Modules[ModuleTechnical]
	assert.Equal(t, "2-3", technical.Range)
	assert.True(t, technical.Found)

	execution := got.Modules[ModuleExecution]
	assert.Equal(t, "1-2", execution.Range)
	assert.False(t, execution.Found)
	assert.Nil(t, execution.Suggestion)

	assert.Len(t, got.Modules, 3)
}

func TestResolveSuggestions_EmptyTable(t *testing.T) {
	result := Result{TotalScore: 10, ModuleScores: map[Module]float64{ModuleSocial: 0}}

	got := ResolveSuggestions(result, SuggestionTable{})
	assert.False(t, got.Total.Found)
	assert.Equal(t, "0-20", got.Total.Range)
	assert.False(t, got.Modules[ModuleSocial].Found)
}

func TestSuggestionTable_Lookups(t *testing.T) {
	table := testTable()

	_, ok := table.Total("0-20")
	assert.False(t, ok)

	_, ok = table.Module(ModuleSocial, "4-5")
	assert.False(t, ok)

	s, ok := table.Module(ModuleCreativity, "4-5")
	assert.True(t, ok)
	assert.Equal(t, "创造力突出", s.Title)
}

func TestLevelsFor(t *testing.T) {
	lv := LevelsFor(Result{
		TotalScore:   81,
		ModuleScores: map[Module]float64{ModuleCreativity: 4, ModuleSocial: 1},
	})

	assert.Equal(t, LevelExpert, lv.Total)
	assert.Equal(t, LevelExpert, lv.Modules[ModuleCreativity])
	assert.Equal(t, LevelEntry, lv.Modules[ModuleSocial])
}

func TestSuggestionTable_MissingEntries(t *testing.T) {
	missing := testTable().MissingEntries()

	assert.Len(t, missing, len(TotalRanges())-1+len(Modules)*len(ModuleRanges())-2)
	assert.Contains(t, missing, "totalScore/0-20")
	assert.NotContains(t, missing, "totalScore/61-80")
	assert.Contains(t, missing, "创造力/0-1")
	assert.NotContains(t, missing, "创造力/4-5")
	assert.NotContains(t, missing, "技术能力/2-3")

	assert.Len(t, SuggestionTable{}.MissingEntries(), 5+5*5)
}
