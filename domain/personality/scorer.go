package personality

import (
	"math"
	"strings"
)

// Score tallies an answer set against the catalog and resolves the
// four-letter type code. It is pure: same inputs, same classification.
//
// Each matched answer contributes answer.Value * question.Score to a
// single signed running total for the question's axis. Answers that
// reference a question absent from the catalog contribute nothing; the
// catalog is allowed to drift ahead of stored answers. An axis total of
// exactly zero resolves to the positive-pole letter (E, S, T or J).
func Score(catalog Catalog, answers []Answer) Classification {
	totals := make(map[Axis]float64, len(Axes))
	for _, ans := range answers {
		q, ok := catalog.Get(ans.QuestionID)
		if !ok {
			continue
		}
		totals[q.Category] += ans.Value * float64(q.Score)
	}

	var code strings.Builder
	ratios := make(map[Axis]float64, len(Axes))
	for _, axis := range Axes {
		total := totals[axis]
		code.WriteString(axis.Letter(total))
		ratios[axis] = confidence(total)
	}

	return Classification{
		PersonalityType: code.String(),
		Ratios:          ratios,
		Status:          StatusComplete,
	}
}

// confidence maps a signed axis total onto [0,1] toward the positive
// pole. When both pole magnitudes are zero the ratio is undefined; 0.5
// is reported instead of propagating NaN.
func confidence(total float64) float64 {
	pos := math.Max(total, 0)
	neg := math.Max(-total, 0)
	if pos+neg == 0 {
		return 0.5
	}
	return pos / (pos + neg)
}
