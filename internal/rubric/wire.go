package rubric

import "github.com/tidwall/gjson"

// Historical rubric blobs were written by several frontend generations and
// carry Portuguese section keys, sometimes with broken accent encoding
// ("técnico" stored as "tÃ©cnico"). Aliases are probed in order; the first
// key present in the blob wins. New blobs are always written with the
// canonical English keys.
var sectionAliases = map[string][]string{
	SectionScreening: {"screening", "triagem"},
	SectionCulture:   {"culture", "cultura"},
	SectionTechnical: {"technical", "tecnico", "técnico", "tÃ©cnico"},
}

// legacyNotesKey inside an answer section held the evaluator's free-text
// notes in the v1 shape and must not be read as a criterion selection.
const legacyNotesKey = "anotacoes"

// ParseDefinition decodes a stored rubric blob into the canonical
// Definition, normalizing legacy section keys and tolerating weights and
// valores persisted as strings (the old UI saved raw input values).
// A nil or empty blob yields a zero Definition, which Score and Validate
// both handle.
func ParseDefinition(raw []byte) Definition {
	var def Definition
	if len(raw) == 0 {
		return def
	}

	def.Screening = parseCriteria(raw, SectionScreening)
	def.Culture = parseCriteria(raw, SectionCulture)
	def.Technical = parseCriteria(raw, SectionTechnical)

	gjson.GetBytes(raw, "notas").ForEach(func(_, item gjson.Result) bool {
		id := item.Get("id").String()
		if id == "" {
			return true
		}
		def.Scale = append(def.Scale, RatingLevel{
			ID:    id,
			Nome:  item.Get("nome").String(),
			Valor: item.Get("valor").Float(),
		})
		return true
	})
	return def
}

// ParseAnswerSet decodes a stored answer blob into the canonical AnswerSet.
// It accepts both the flat shape and the legacy wrapper that nested the
// selections under a "scores" key, normalizes section aliases, and drops
// the legacy per-section notes entry.
func ParseAnswerSet(raw []byte) AnswerSet {
	var answers AnswerSet
	if len(raw) == 0 {
		return answers
	}
	if scores := gjson.GetBytes(raw, "scores"); scores.IsObject() {
		raw = []byte(scores.Raw)
	}

	answers.Screening = parseSelections(raw, SectionScreening)
	answers.Culture = parseSelections(raw, SectionCulture)
	answers.Technical = parseSelections(raw, SectionTechnical)
	return answers
}

func sectionResult(raw []byte, section string) gjson.Result {
	for _, alias := range sectionAliases[section] {
		if res := gjson.GetBytes(raw, alias); res.Exists() {
			return res
		}
	}
	return gjson.Result{}
}

func parseCriteria(raw []byte, section string) []Criterion {
	res := sectionResult(raw, section)
	if !res.IsArray() {
		return nil
	}
	var criteria []Criterion
	res.ForEach(func(_, item gjson.Result) bool {
		name := item.Get("name").String()
		if name == "" {
			return true
		}
		criteria = append(criteria, Criterion{
			Name:   name,
			Weight: item.Get("weight").Float(),
		})
		return true
	})
	return criteria
}

func parseSelections(raw []byte, section string) map[string]string {
	res := sectionResult(raw, section)
	if !res.IsObject() {
		return nil
	}
	selections := make(map[string]string)
	res.ForEach(func(key, value gjson.Result) bool {
		if key.String() == legacyNotesKey {
			return true
		}
		selections[key.String()] = value.String()
		return true
	})
	if len(selections) == 0 {
		return nil
	}
	return selections
}
