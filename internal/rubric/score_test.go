package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func threeLevelScale() []RatingLevel {
	return []RatingLevel{
		{ID: "a", Nome: "Abaixo", Valor: 0},
		{ID: "b", Nome: "Atende", Valor: 50},
		{ID: "c", Nome: "Supera", Valor: 100},
	}
}

// TestScoreTechnicalOnly covers the reference scenario: one answered
// criterion at the top level, one explicitly N/A.
func TestScoreTechnicalOnly(t *testing.T) {
	def := Definition{
		Technical: []Criterion{
			{Name: "React", Weight: 70},
			{Name: "SQL", Weight: 30},
		},
		Scale: threeLevelScale(),
	}
	answers := AnswerSet{
		Technical: map[string]string{"React": "c", "SQL": NotApplicable},
	}

	result := Score(def, answers)

	assert.Equal(t, 100.0, result.Technical)
	assert.Equal(t, 0.0, result.Screening)
	assert.Equal(t, 0.0, result.Culture)
	// Only the technical section was answered, so it alone drives overall.
	assert.Equal(t, 100.0, result.Overall)
}

func TestScoreSections(t *testing.T) {
	tests := []struct {
		name     string
		def      Definition
		answers  AnswerSet
		expected ScoreResult
	}{
		{
			name:     "empty rubric scores zero without panicking",
			def:      Definition{},
			answers:  AnswerSet{},
			expected: ScoreResult{},
		},
		{
			name: "unanswered rubric scores zero",
			def: Definition{
				Screening: []Criterion{{Name: "CV", Weight: 100}},
				Scale:     threeLevelScale(),
			},
			answers:  AnswerSet{},
			expected: ScoreResult{},
		},
		{
			name: "mixed answers across two sections",
			def: Definition{
				Screening: []Criterion{{Name: "CV", Weight: 100}},
				Culture:   []Criterion{{Name: "Comunicação", Weight: 60}, {Name: "Colaboração", Weight: 40}},
				Scale:     threeLevelScale(),
			},
			answers: AnswerSet{
				Screening: map[string]string{"CV": "b"},
				Culture:   map[string]string{"Comunicação": "c", "Colaboração": "a"},
			},
			// screening = 50; culture = (100*60+0*40)/(100*100)*100 = 60; overall = 55.
			expected: ScoreResult{Screening: 50, Culture: 60, Overall: 55},
		},
		{
			name: "unknown level id is skipped, not scored as zero",
			def: Definition{
				Technical: []Criterion{{Name: "Go", Weight: 50}, {Name: "SQL", Weight: 50}},
				Scale:     threeLevelScale(),
			},
			answers: AnswerSet{
				Technical: map[string]string{"Go": "c", "SQL": "deleted-level"},
			},
			expected: ScoreResult{Technical: 100, Overall: 100},
		},
		{
			name: "all selections not applicable yields zero overall",
			def: Definition{
				Technical: []Criterion{{Name: "Go", Weight: 100}},
				Scale:     threeLevelScale(),
			},
			answers: AnswerSet{
				Technical: map[string]string{"Go": NotApplicable},
			},
			expected: ScoreResult{},
		},
		{
			name: "empty scale cannot resolve any answer",
			def: Definition{
				Technical: []Criterion{{Name: "Go", Weight: 100}},
			},
			answers: AnswerSet{
				Technical: map[string]string{"Go": "b"},
			},
			expected: ScoreResult{},
		},
		{
			name: "one decimal rounding at the boundary",
			def: Definition{
				Technical: []Criterion{
					{Name: "Go", Weight: 40},
					{Name: "SQL", Weight: 30},
					{Name: "Infra", Weight: 30},
				},
				Scale: threeLevelScale(),
			},
			answers: AnswerSet{
				Technical: map[string]string{"Go": "c", "SQL": "b", "Infra": "a"},
			},
			// (100*40 + 50*30) / 10000 * 100 = 55.0
			expected: ScoreResult{Technical: 55, Overall: 55},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.def, tt.answers))
		})
	}
}

// TestScoreDeterministic checks that identical inputs always produce
// identical output.
func TestScoreDeterministic(t *testing.T) {
	def := Definition{
		Screening: []Criterion{{Name: "CV", Weight: 30}, {Name: "Fit", Weight: 70}},
		Technical: []Criterion{{Name: "Go", Weight: 100}},
		Scale:     threeLevelScale(),
	}
	answers := AnswerSet{
		Screening: map[string]string{"CV": "b", "Fit": "c"},
		Technical: map[string]string{"Go": "a"},
	}

	first := Score(def, answers)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(def, answers))
	}
}

// TestScoreWeightScaleInvariance: multiplying every weight in a section by
// a positive constant must not change the section score.
func TestScoreWeightScaleInvariance(t *testing.T) {
	base := Definition{
		Technical: []Criterion{{Name: "Go", Weight: 70}, {Name: "SQL", Weight: 30}},
		Scale:     threeLevelScale(),
	}
	scaled := Definition{
		Technical: []Criterion{{Name: "Go", Weight: 7}, {Name: "SQL", Weight: 3}},
		Scale:     threeLevelScale(),
	}
	answers := AnswerSet{
		Technical: map[string]string{"Go": "c", "SQL": "b"},
	}

	assert.Equal(t, Score(base, answers), Score(scaled, answers))
}

// TestScoreNotApplicableNeutrality: marking a criterion N/A must not touch
// other sections and must never score worse than answering it with the
// lowest level.
func TestScoreNotApplicableNeutrality(t *testing.T) {
	def := Definition{
		Culture:   []Criterion{{Name: "Comunicação", Weight: 100}},
		Technical: []Criterion{{Name: "Go", Weight: 60}, {Name: "SQL", Weight: 40}},
		Scale:     threeLevelScale(),
	}

	withNA := Score(def, AnswerSet{
		Culture:   map[string]string{"Comunicação": "c"},
		Technical: map[string]string{"Go": "c", "SQL": NotApplicable},
	})
	withWorst := Score(def, AnswerSet{
		Culture:   map[string]string{"Comunicação": "c"},
		Technical: map[string]string{"Go": "c", "SQL": "a"},
	})

	assert.Equal(t, 100.0, withNA.Culture)
	assert.Equal(t, withWorst.Culture, withNA.Culture)
	assert.GreaterOrEqual(t, withNA.Technical, withWorst.Technical)
	assert.Equal(t, 100.0, withNA.Technical)
	assert.Equal(t, 60.0, withWorst.Technical)
}
