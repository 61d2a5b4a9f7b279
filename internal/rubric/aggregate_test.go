package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("no evaluations", func(t *testing.T) {
		summary := Summarize(nil)
		assert.Nil(t, summary.FinalScore)
		assert.Empty(t, summary.Evaluators)
	})

	t.Run("two evaluators average", func(t *testing.T) {
		summary := Summarize([]EvaluatorScore{
			{Name: "Ana", Overall: 80},
			{Name: "Bruno", Overall: 60},
		})

		require.NotNil(t, summary.FinalScore)
		assert.Equal(t, 70.0, *summary.FinalScore)
		assert.ElementsMatch(t, []string{"Ana", "Bruno"}, summary.Evaluators)
	})

	t.Run("final score rounds to one decimal", func(t *testing.T) {
		summary := Summarize([]EvaluatorScore{
			{Name: "Ana", Overall: 100},
			{Name: "Bruno", Overall: 66.6},
			{Name: "Carla", Overall: 33.3},
		})

		require.NotNil(t, summary.FinalScore)
		assert.Equal(t, 66.6, *summary.FinalScore)
	})

	t.Run("duplicate names are reported once", func(t *testing.T) {
		summary := Summarize([]EvaluatorScore{
			{Name: "Ana", Overall: 40},
			{Name: "Ana", Overall: 60},
		})

		assert.Equal(t, []string{"Ana"}, summary.Evaluators)
		require.NotNil(t, summary.FinalScore)
		assert.Equal(t, 50.0, *summary.FinalScore)
	})
}
