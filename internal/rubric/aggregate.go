package rubric

// EvaluatorScore is one evaluator's persisted contribution to an
// application: the display name plus the overall score cached when the
// evaluation was saved.
type EvaluatorScore struct {
	Name    string
	Overall float64
}

// Summary is the consolidated view of all evaluations for one application.
// FinalScore is nil when nobody has evaluated yet.
type Summary struct {
	Evaluators []string `json:"evaluators"`
	FinalScore *float64 `json:"final_score"`
}

// Summarize combines the persisted scores of every evaluator into the
// display summary. The final score is the arithmetic mean of the stored
// overall values; it is deliberately not recomputed from the current
// rubric, so later rubric edits do not silently rewrite what a past
// evaluator meant.
func Summarize(scores []EvaluatorScore) Summary {
	summary := Summary{Evaluators: []string{}}
	if len(scores) == 0 {
		return summary
	}

	seen := make(map[string]bool, len(scores))
	var sum float64
	for _, score := range scores {
		sum += score.Overall
		if score.Name != "" && !seen[score.Name] {
			seen[score.Name] = true
			summary.Evaluators = append(summary.Evaluators, score.Name)
		}
	}

	final := Round1(sum / float64(len(scores)))
	summary.FinalScore = &final
	return summary
}
