// Package grading scores submitted answers against a question bank.
// Grading never fails: unknown questions and answers of the wrong shape
// are simply incorrect.
package grading

import (
	"math"
	"sort"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

// Bank resolves question ids to questions. *quiz.Bank satisfies it.
type Bank interface {
	Question(id string) (quiz.Question, bool)
}

// GradeAnswers grades each answer independently and returns one result per
// answer, in the same order.
func GradeAnswers(answers []Answer, bank Bank) []QuestionResult {
	out := make([]QuestionResult, 0, len(answers))
	for _, a := range answers {
		q, ok := bank.Question(a.ID)
		out = append(out, QuestionResult{ID: a.ID, Correct: ok && Grade(a.Value, q)})
	}
	return out
}

// Grade reports whether v answers q correctly.
func Grade(v Value, q quiz.Question) bool {
	switch qv := q.Variant.(type) {
	case quiz.Text:
		return gradeText(v, qv)
	case quiz.Radio:
		return gradeRadio(v, qv)
	case quiz.Checkbox:
		return gradeCheckbox(v, qv)
	}
	return false
}

func gradeText(v Value, q quiz.Text) bool {
	var s string
	switch v.kind {
	case ValueString:
		s = v.str
	case ValueNumber:
		s = formatNumber(v.num)
	default:
		return false
	}
	return normalizeText(s, q.CaseSensitive) == normalizeText(q.CorrectText, q.CaseSensitive)
}

// Radio answers must be numeric; "1" never matches index 1.
func gradeRadio(v Value, q quiz.Radio) bool {
	return v.kind == ValueNumber && v.num == float64(q.CorrectIndex)
}

func gradeCheckbox(v Value, q quiz.Checkbox) bool {
	if v.kind != ValueNumbers || len(v.nums) != len(q.CorrectIndexes) {
		return false
	}
	got := append([]float64(nil), v.nums...)
	sort.Float64s(got)
	want := append([]int(nil), q.CorrectIndexes...)
	sort.Ints(want)
	for i := range got {
		if got[i] != float64(want[i]) {
			return false
		}
	}
	return true
}

// CalculateScore totals results. Percentage is rounded to the nearest
// integer and is 0 for an empty result set.
func CalculateScore(results []QuestionResult) Score {
	s := Score{Total: len(results)}
	for _, r := range results {
		if r.Correct {
			s.Score++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Score) / float64(s.Total) * 100))
	}
	return s
}
