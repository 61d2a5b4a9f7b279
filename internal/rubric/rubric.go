// Package rubric holds the weighted evaluation logic shared by every
// scoring path: the authoritative save path, the preview endpoint and the
// benchmark seeding done at job creation. It is pure and has no knowledge
// of HTTP or the database.
package rubric

// Canonical section keys. The persistence layer may still hold legacy
// Portuguese keys ("triagem", "cultura", "tecnico" with or without accent);
// those are normalized by ParseDefinition before reaching this package's
// algorithms.
const (
	SectionScreening = "screening"
	SectionCulture   = "culture"
	SectionTechnical = "technical"
)

// NotApplicable is the evaluator's explicit choice to leave a criterion out
// of the calculation. It is treated exactly like an unanswered criterion.
const NotApplicable = "NA"

// RatingLevel is one point on the rating ruler ("régua"). Ordering among
// levels is given by Valor, not by slice position.
type RatingLevel struct {
	ID    string  `json:"id"`
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

// Criterion is one named, weighted dimension inside a section.
type Criterion struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Definition is the per-job evaluation configuration: three fixed sections
// plus the rating scale. An empty section is excluded from scoring entirely.
type Definition struct {
	Screening []Criterion   `json:"screening"`
	Culture   []Criterion   `json:"culture"`
	Technical []Criterion   `json:"technical"`
	Scale     []RatingLevel `json:"notas"`
}

// AnswerSet holds one evaluator's selections for one application, keyed by
// criterion name. A value is a RatingLevel id or NotApplicable; a missing
// key means the criterion was never answered.
type AnswerSet struct {
	Screening map[string]string `json:"screening,omitempty"`
	Culture   map[string]string `json:"culture,omitempty"`
	Technical map[string]string `json:"technical,omitempty"`
}

// ScoreResult carries normalized 0-100 scores per section plus the overall
// average, all rounded to one decimal place.
type ScoreResult struct {
	Screening float64 `json:"screening"`
	Culture   float64 `json:"culture"`
	Technical float64 `json:"technical"`
	Overall   float64 `json:"overall"`
}

// DefaultDefinition returns the rubric every new job starts with: empty
// sections and the standard three-level scale.
func DefaultDefinition() Definition {
	return Definition{
		Screening: []Criterion{},
		Culture:   []Criterion{},
		Technical: []Criterion{},
		Scale: []RatingLevel{
			{ID: "1", Nome: "Abaixo", Valor: 0},
			{ID: "2", Nome: "Atende", Valor: 50},
			{ID: "3", Nome: "Supera", Valor: 100},
		},
	}
}
