package rubric

import "sort"

// Benchmark derives the deterministic "average expectations" answer set
// used to seed a reference application when a job is created. The chosen
// level is the one at index floor(n/2) of the scale sorted by Valor
// ascending: the exact midpoint for an odd-length scale, the level just
// above the midpoint for an even-length one. Every criterion of every
// non-empty section receives that single level; there is no randomness
// and no per-criterion variation.
func Benchmark(def Definition) AnswerSet {
	var answers AnswerSet
	if len(def.Scale) == 0 {
		return answers
	}

	levels := make([]RatingLevel, len(def.Scale))
	copy(levels, def.Scale)
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Valor < levels[j].Valor })
	center := levels[len(levels)/2].ID

	fill := func(criteria []Criterion) map[string]string {
		if len(criteria) == 0 {
			return nil
		}
		selections := make(map[string]string, len(criteria))
		for _, criterion := range criteria {
			selections[criterion.Name] = center
		}
		return selections
	}

	answers.Screening = fill(def.Screening)
	answers.Culture = fill(def.Culture)
	answers.Technical = fill(def.Technical)
	return answers
}
