package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkCenterLevel(t *testing.T) {
	tests := []struct {
		name     string
		scale    []RatingLevel
		expected string
	}{
		{
			name: "odd scale picks the exact midpoint",
			scale: []RatingLevel{
				{ID: "1", Valor: 0},
				{ID: "2", Valor: 5},
				{ID: "3", Valor: 10},
			},
			expected: "2",
		},
		{
			name: "even scale picks the level just above the midpoint",
			scale: []RatingLevel{
				{ID: "1", Valor: 0},
				{ID: "2", Valor: 3},
				{ID: "3", Valor: 7},
				{ID: "4", Valor: 10},
			},
			expected: "3",
		},
		{
			name: "levels are ordered by valor, not list position",
			scale: []RatingLevel{
				{ID: "high", Valor: 100},
				{ID: "low", Valor: 0},
				{ID: "mid", Valor: 50},
			},
			expected: "mid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Definition{
				Screening: []Criterion{{Name: "CV", Weight: 100}},
				Technical: []Criterion{{Name: "Go", Weight: 50}, {Name: "SQL", Weight: 50}},
				Scale:     tt.scale,
			}

			answers := Benchmark(def)

			assert.Equal(t, map[string]string{"CV": tt.expected}, answers.Screening)
			assert.Equal(t, map[string]string{"Go": tt.expected, "SQL": tt.expected}, answers.Technical)
			assert.Nil(t, answers.Culture, "empty section gets no selections")
		})
	}
}

func TestBenchmarkEmptyScale(t *testing.T) {
	def := Definition{
		Technical: []Criterion{{Name: "Go", Weight: 100}},
	}
	assert.Equal(t, AnswerSet{}, Benchmark(def))
}

// TestBenchmarkScoresAsAverage: the seeded reference profile must land on
// the center level's value once scored by the engine.
func TestBenchmarkScoresAsAverage(t *testing.T) {
	def := Definition{
		Culture:   []Criterion{{Name: "Fit", Weight: 100}},
		Technical: []Criterion{{Name: "Go", Weight: 70}, {Name: "SQL", Weight: 30}},
		Scale:     threeLevelScale(),
	}

	result := Score(def, Benchmark(def))
	require.NotZero(t, result.Overall)

	assert.Equal(t, 50.0, result.Culture)
	assert.Equal(t, 50.0, result.Technical)
	assert.Equal(t, 50.0, result.Overall)
}
