package service

import (
	"lingua_placement/internal/model"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Level thresholds in percent, inclusive on the lower bound.
const (
	AdvancedThreshold     = 67
	IntermediateThreshold = 34
)

// Writing answers tolerate ceil(15% of the normalized correct length) edits, at least one.
const (
	writingTolerancePercent = 15
	minWritingTolerance     = 1
)

// NormalizeAnswer folds a free-text answer for comparison: lowercase, keep
// only letters, numbers and whitespace, collapse whitespace runs and trim.
// Applying it twice yields the same string.
func NormalizeAnswer(s string) string {
	s = strings.TrimSpace(strings.ToLower(norm.NFC.String(s)))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return norm.NFC.String(strings.Join(strings.Fields(b.String()), " "))
}

// WritingTolerance is the number of character edits accepted against a
// normalized correct answer.
func WritingTolerance(normalizedCorrect string) int {
	n := utf8.RuneCountInString(normalizedCorrect)
	return max(minWritingTolerance, (n*writingTolerancePercent+99)/100)
}

// MatchesWriting grades a free-text answer against the expected text.
func MatchesWriting(answer, correct string) bool {
	a := NormalizeAnswer(answer)
	c := NormalizeAnswer(correct)
	if a == c {
		return true
	}
	return levenshtein.Distance(a, c, nil) <= WritingTolerance(c)
}

// GradeAnswer reports whether answer is correct for q. Option letters are
// compared exactly, case included.
func GradeAnswer(q model.Question, answer string) bool {
	if wb, ok := q.Body.(model.WritingBody); ok {
		return MatchesWriting(answer, wb.CorrectText)
	}
	if c, ok := q.Choices(); ok {
		return answer == string(c.Correct)
	}
	return false
}

// CorrectAnswer is what the correction report shows as the expected answer.
func CorrectAnswer(q model.Question) string {
	if wb, ok := q.Body.(model.WritingBody); ok {
		return wb.CorrectText
	}
	if c, ok := q.Choices(); ok {
		return string(c.Correct)
	}
	return ""
}

// Scorecard accumulates points of one submission.
type Scorecard struct {
	Total      int
	Max        int
	ByCategory map[model.Category]int
}

func NewScorecard() Scorecard {
	return Scorecard{ByCategory: make(map[model.Category]int, len(model.Categories))}
}

// Add counts a graded question: its weight always goes to Max, and to Total
// and its category only when correct.
func (s *Scorecard) Add(q model.Question, correct bool) {
	points := q.Difficulty.Points()
	s.Max += points
	if correct {
		s.Total += points
		s.ByCategory[q.Category()] += points
	}
}

func (s Scorecard) Percentage() float64 {
	return Percentage(s.Total, s.Max)
}

func (s Scorecard) LevelOrder() int {
	return LevelOrderFor(s.Total, s.Max)
}

// Percentage is total/max in percent, 0 when nothing was scorable.
func Percentage(total, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(total) / float64(maxScore) * 100
}

// RoundPercentage rounds to one decimal place.
func RoundPercentage(p float64) float64 {
	return math.Round(p*10) / 10
}

// LevelOrderFor maps a score to a level order. The comparison is done on
// integers so that exactly 34% and 67% land in the upper tier.
func LevelOrderFor(total, maxScore int) int {
	if maxScore <= 0 {
		return model.LevelOrderBeginner
	}
	switch {
	case total*100 >= AdvancedThreshold*maxScore:
		return model.LevelOrderAdvanced
	case total*100 >= IntermediateThreshold*maxScore:
		return model.LevelOrderIntermediate
	default:
		return model.LevelOrderBeginner
	}
}
