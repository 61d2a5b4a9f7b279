package rubric

import "fmt"

// ValidationError describes one problem with a rubric in terms a recruiter
// can act on. Section is empty for scale-level problems.
type ValidationError struct {
	Section string  `json:"section,omitempty"`
	Sum     float64 `json:"sum,omitempty"`
	Delta   float64 `json:"delta,omitempty"`
	Message string  `json:"message"`
}

func (e ValidationError) Error() string { return e.Message }

// Validate checks the rules enforced when a recruiter saves rubric edits:
// every non-empty section's weights must sum to exactly 100, and the rating
// scale needs at least two levels. Validation is advisory; Score still
// produces a best-effort result for an invalid rubric, so answers collected
// before an edit keep working.
func Validate(def Definition) []ValidationError {
	var errs []ValidationError

	checkWeights := func(section string, criteria []Criterion) {
		if len(criteria) == 0 {
			return
		}
		var sum float64
		for _, criterion := range criteria {
			sum += criterion.Weight
		}
		if sum != 100 {
			errs = append(errs, ValidationError{
				Section: section,
				Sum:     sum,
				Delta:   100 - sum,
				Message: fmt.Sprintf("%s weights sum to %g instead of 100 (off by %g)", section, sum, 100-sum),
			})
		}
	}

	checkWeights(SectionScreening, def.Screening)
	checkWeights(SectionCulture, def.Culture)
	checkWeights(SectionTechnical, def.Technical)

	if len(def.Scale) < 2 {
		errs = append(errs, ValidationError{
			Message: "rating scale must have at least two levels",
		})
	}
	return errs
}
