package rubric

import "math"

// Score computes one evaluator's normalized result for a rubric.
//
// For every section: each answered criterion contributes
// valor*weight to the earned total and 100*weight to the possible total,
// so the section score is 100 * earned / possible. A criterion whose
// selection is missing, NotApplicable or an unknown level id is skipped
// entirely; its weight is neither redistributed nor counted as possible.
// A section with no answered criterion scores 0 and does not participate
// in the overall average. Overall is the arithmetic mean of the sections
// that had at least one answer, or 0 when none did.
//
// The function is total: malformed or mid-edit rubrics degrade to skips
// and zeroes, never to an error or a NaN. Rounding to one decimal happens
// only at the output boundary; accumulation uses full precision.
func Score(def Definition, answers AnswerSet) ScoreResult {
	values := make(map[string]float64, len(def.Scale))
	for _, level := range def.Scale {
		values[level.ID] = level.Valor
	}

	sectionScore := func(criteria []Criterion, selections map[string]string) (float64, bool) {
		var earned, possible float64
		for _, criterion := range criteria {
			selection, ok := selections[criterion.Name]
			if !ok || selection == "" || selection == NotApplicable {
				continue
			}
			valor, known := values[selection]
			if !known {
				// Stale or malformed level id: treat like N/A rather
				// than scoring it as zero.
				continue
			}
			earned += valor * criterion.Weight
			possible += 100 * criterion.Weight
		}
		if possible == 0 {
			return 0, false
		}
		return earned / possible * 100, true
	}

	var (
		result   ScoreResult
		sum      float64
		answered int
	)

	if s, ok := sectionScore(def.Screening, answers.Screening); ok {
		result.Screening = Round1(s)
		sum += s
		answered++
	}
	if s, ok := sectionScore(def.Culture, answers.Culture); ok {
		result.Culture = Round1(s)
		sum += s
		answered++
	}
	if s, ok := sectionScore(def.Technical, answers.Technical); ok {
		result.Technical = Round1(s)
		sum += s
		answered++
	}

	if answered > 0 {
		result.Overall = Round1(sum / float64(answered))
	}
	return result
}

// Round1 rounds to the one-decimal precision used at every score output
// boundary.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
