package pipeline

import (
	"fmt"
	"math"

	"github.com/seojin-dev/quill/internal/itemtypes"
)

// QualityScore holds the five-dimension quality assessment for a measure
// or an aggregate across measures. WasDefaulted marks scores produced by
// the neutral fallback when automated validation was unavailable.
type QualityScore struct {
	Overall                   int      `json:"overall"`
	StandardCompliance        int      `json:"standard_compliance"`
	GradeLevelAppropriateness int      `json:"grade_level_appropriateness"`
	CurriculumAlignment       int      `json:"curriculum_alignment"`
	DifficultyAppropriateness int      `json:"difficulty_appropriateness"`
	GrammarAccuracy           int      `json:"grammar_accuracy"`
	Issues                    []string `json:"issues"`
	Suggestions               []string `json:"suggestions"`
	WasDefaulted              bool     `json:"was_defaulted,omitempty"`
}

// defaultScoreValue is the neutral midpoint used when validation fails open.
const defaultScoreValue = 50

// DefaultScore returns the neutral fail-open score for an item type,
// flagged as defaulted with a single explanatory issue.
func DefaultScore(t itemtypes.ItemType, reason string) QualityScore {
	return QualityScore{
		Overall:                   defaultScoreValue,
		StandardCompliance:        defaultScoreValue,
		GradeLevelAppropriateness: defaultScoreValue,
		CurriculumAlignment:       defaultScoreValue,
		DifficultyAppropriateness: defaultScoreValue,
		GrammarAccuracy:           defaultScoreValue,
		Issues: []string{
			fmt.Sprintf("automated validation unavailable for %s: %s", t, reason),
		},
		Suggestions:  []string{"review this measure manually before approval"},
		WasDefaulted: true,
	}
}

// valid reports whether all score dimensions are within 0-100.
func (q *QualityScore) valid() bool {
	for _, v := range []int{
		q.Overall,
		q.StandardCompliance,
		q.GradeLevelAppropriateness,
		q.CurriculumAlignment,
		q.DifficultyAppropriateness,
		q.GrammarAccuracy,
	} {
		if v < 0 || v > 100 {
			return false
		}
	}
	return true
}

// Aggregate combines per-type component scores into one record-level score.
// Each dimension is the rounded mean across the components actually present,
// in the order given by types. Issues and suggestions are carried over
// prefixed with their source type. The aggregate is flagged defaulted if any
// component was.
func Aggregate(components map[itemtypes.ItemType]QualityScore, types []itemtypes.ItemType) QualityScore {
	if len(types) == 0 {
		return QualityScore{Issues: []string{}, Suggestions: []string{}}
	}

	var agg QualityScore
	agg.Issues = []string{}
	agg.Suggestions = []string{}

	var overall, compliance, gradeLevel, alignment, difficulty, grammar float64
	counted := 0

	for _, t := range types {
		score, ok := components[t]
		if !ok {
			continue
		}
		counted++

		overall += float64(score.Overall)
		compliance += float64(score.StandardCompliance)
		gradeLevel += float64(score.GradeLevelAppropriateness)
		alignment += float64(score.CurriculumAlignment)
		difficulty += float64(score.DifficultyAppropriateness)
		grammar += float64(score.GrammarAccuracy)

		for _, issue := range score.Issues {
			agg.Issues = append(agg.Issues, fmt.Sprintf("[%s] %s", t, issue))
		}
		for _, suggestion := range score.Suggestions {
			agg.Suggestions = append(agg.Suggestions, fmt.Sprintf("[%s] %s", t, suggestion))
		}
		if score.WasDefaulted {
			agg.WasDefaulted = true
		}
	}

	if counted == 0 {
		return agg
	}

	n := float64(counted)
	agg.Overall = roundMean(overall, n)
	agg.StandardCompliance = roundMean(compliance, n)
	agg.GradeLevelAppropriateness = roundMean(gradeLevel, n)
	agg.CurriculumAlignment = roundMean(alignment, n)
	agg.DifficultyAppropriateness = roundMean(difficulty, n)
	agg.GrammarAccuracy = roundMean(grammar, n)

	return agg
}

func roundMean(sum, n float64) int {
	return int(math.Round(sum / n))
}
