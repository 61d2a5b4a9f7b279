package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinitionCanonical(t *testing.T) {
	raw := []byte(`{
		"screening": [{"name": "CV", "weight": 100}],
		"culture": [],
		"technical": [{"name": "React", "weight": 70}, {"name": "SQL", "weight": 30}],
		"notas": [
			{"id": "a", "nome": "Abaixo", "valor": 0},
			{"id": "b", "nome": "Atende", "valor": 50},
			{"id": "c", "nome": "Supera", "valor": 100}
		]
	}`)

	def := ParseDefinition(raw)

	assert.Equal(t, []Criterion{{Name: "CV", Weight: 100}}, def.Screening)
	assert.Nil(t, def.Culture)
	assert.Equal(t, []Criterion{{Name: "React", Weight: 70}, {Name: "SQL", Weight: 30}}, def.Technical)
	require.Len(t, def.Scale, 3)
	assert.Equal(t, RatingLevel{ID: "b", Nome: "Atende", Valor: 50}, def.Scale[1])
}

func TestParseDefinitionLegacyKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "portuguese keys without accent",
			raw:  `{"triagem": [{"name": "CV", "weight": 100}], "tecnico": [{"name": "Go", "weight": 100}], "notas": [{"id": "1", "valor": 0}, {"id": "2", "valor": 50}]}`,
		},
		{
			name: "accented technical key",
			raw:  `{"triagem": [{"name": "CV", "weight": 100}], "técnico": [{"name": "Go", "weight": 100}], "notas": [{"id": "1", "valor": 0}, {"id": "2", "valor": 50}]}`,
		},
		{
			name: "mojibake technical key",
			raw:  `{"triagem": [{"name": "CV", "weight": 100}], "tÃ©cnico": [{"name": "Go", "weight": 100}], "notas": [{"id": "1", "valor": 0}, {"id": "2", "valor": 50}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := ParseDefinition([]byte(tt.raw))
			assert.Equal(t, []Criterion{{Name: "CV", Weight: 100}}, def.Screening)
			assert.Equal(t, []Criterion{{Name: "Go", Weight: 100}}, def.Technical)
			assert.Len(t, def.Scale, 2)
		})
	}
}

// TestParseDefinitionStringNumbers: the old UI persisted weights and valores
// as raw input strings.
func TestParseDefinitionStringNumbers(t *testing.T) {
	raw := []byte(`{
		"technical": [{"name": "Go", "weight": "70"}],
		"notas": [{"id": 1, "nome": "Abaixo", "valor": "0"}, {"id": 2, "nome": "Atende", "valor": "50"}]
	}`)

	def := ParseDefinition(raw)

	require.Len(t, def.Technical, 1)
	assert.Equal(t, 70.0, def.Technical[0].Weight)
	require.Len(t, def.Scale, 2)
	assert.Equal(t, "1", def.Scale[0].ID)
	assert.Equal(t, 50.0, def.Scale[1].Valor)
}

func TestParseDefinitionEmpty(t *testing.T) {
	assert.Equal(t, Definition{}, ParseDefinition(nil))
	assert.Equal(t, Definition{}, ParseDefinition([]byte(`{}`)))
	assert.Equal(t, Definition{}, ParseDefinition([]byte(`not json`)))
}

func TestParseAnswerSet(t *testing.T) {
	t.Run("flat canonical shape", func(t *testing.T) {
		answers := ParseAnswerSet([]byte(`{"technical": {"React": "c", "SQL": "NA"}}`))
		assert.Equal(t, map[string]string{"React": "c", "SQL": "NA"}, answers.Technical)
		assert.Nil(t, answers.Screening)
	})

	t.Run("legacy scores wrapper and section aliases", func(t *testing.T) {
		raw := []byte(`{"scores": {"triagem": {"CV": "b"}, "tecnico": {"Go": "c"}}}`)
		answers := ParseAnswerSet(raw)
		assert.Equal(t, map[string]string{"CV": "b"}, answers.Screening)
		assert.Equal(t, map[string]string{"Go": "c"}, answers.Technical)
	})

	t.Run("legacy notes entry is dropped", func(t *testing.T) {
		raw := []byte(`{"cultura": {"Fit": "b", "anotacoes": "ótima conversa"}}`)
		answers := ParseAnswerSet(raw)
		assert.Equal(t, map[string]string{"Fit": "b"}, answers.Culture)
	})

	t.Run("numeric level ids normalize to strings", func(t *testing.T) {
		answers := ParseAnswerSet([]byte(`{"technical": {"Go": 3}}`))
		assert.Equal(t, map[string]string{"Go": "3"}, answers.Technical)
	})

	t.Run("empty blob", func(t *testing.T) {
		assert.Equal(t, AnswerSet{}, ParseAnswerSet(nil))
	})
}

// TestWireRoundTrip: a normalized legacy blob scores identically to its
// canonical equivalent.
func TestWireRoundTrip(t *testing.T) {
	legacyDef := []byte(`{
		"triagem": [],
		"cultura": [],
		"técnico": [{"name": "React", "weight": "70"}, {"name": "SQL", "weight": "30"}],
		"notas": [{"id": "a", "valor": 0}, {"id": "b", "valor": 50}, {"id": "c", "valor": 100}]
	}`)
	legacyAnswers := []byte(`{"scores": {"tecnico": {"React": "c", "SQL": "NA"}}}`)

	result := Score(ParseDefinition(legacyDef), ParseAnswerSet(legacyAnswers))

	assert.Equal(t, 100.0, result.Technical)
	assert.Equal(t, 100.0, result.Overall)
}
