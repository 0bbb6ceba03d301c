package service

import (
	"lingua_placement/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases and trims", "  Bonjour LE Monde  ", "bonjour le monde"},
		{"strips punctuation", "Hello, world!", "hello world"},
		{"collapses whitespace", "a \t\n  b", "a b"},
		{"punctuation next to trailing space", "fin ! ", "fin"},
		{"keeps accents", "Élève", "élève"},
		{"composes decomposed input", "E\u0301cole", "\u00e9cole"},
		{"drops invalid bytes", "\xff ok", "ok"},
		{"keeps digits", "Room 101.", "room 101"},
		{"only symbols", "?!...", ""},
		{"non latin script", "Привет, МИР", "привет мир"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAnswer(tt.in))
		})
	}
}

func TestNormalizeAnswer_Idempotent(t *testing.T) {
	inputs := []string{
		"  Bonjour, le   monde ! ",
		"été à Paris",
		"tab\tand\nnewline",
		"x -- y",
		"",
	}
	for _, in := range inputs {
		once := NormalizeAnswer(in)
		assert.Equal(t, once, NormalizeAnswer(once), "input %q", in)
	}
}

func TestWritingTolerance(t *testing.T) {
	tests := []struct {
		correct string
		want    int
	}{
		{"", 1},
		{"oui", 1},
		{"bonjour", 2},
		{"0123456789", 2},
		{"bonjour le monde", 3},
		{strings.Repeat("a", 20), 3},
		{strings.Repeat("a", 21), 4},
		{"élève", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WritingTolerance(tt.correct), "correct %q", tt.correct)
	}
}

func TestMatchesWriting_ToleranceBoundary(t *testing.T) {
	for n := 10; n <= 40; n++ {
		correct := strings.Repeat("x", n)
		floor := n * 15 / 100

		assert.True(t, MatchesWriting(strings.Repeat("y", floor)+correct[floor:], correct),
			"n=%d: %d substitutions must be accepted", n, floor)
		assert.False(t, MatchesWriting(strings.Repeat("y", floor+2)+correct[floor+2:], correct),
			"n=%d: %d substitutions must be rejected", n, floor+2)
	}
}

func TestMatchesWriting(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		correct string
		want    bool
	}{
		{"exact", "Bonjour le monde", "Bonjour le monde", true},
		{"case and punctuation", "bonjour, LE monde!", "Bonjour le monde", true},
		{"one typo", "bonjour le mondee", "Bonjour le monde", true},
		{"transposition on short word", "oiu", "oui", false},
		{"one edit on short word", "ou", "oui", true},
		{"unrelated", "au revoir", "Bonjour le monde", false},
		{"empty answer", "", "Bonjour le monde", false},
		{"counts runes not bytes", "ecole", "école", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesWriting(tt.answer, tt.correct))
		})
	}
}

func TestGradeAnswer_MultipleChoiceIsExact(t *testing.T) {
	q := model.Question{
		Difficulty: model.DifficultyEasy,
		Body:       model.GrammarBody{Choices: model.Choices{A: "est", B: "es", C: "suis", D: "sont", Correct: model.OptionB}},
	}

	assert.True(t, GradeAnswer(q, "b"))
	assert.False(t, GradeAnswer(q, "B"))
	assert.False(t, GradeAnswer(q, " b"))
	assert.False(t, GradeAnswer(q, "a"))
	assert.False(t, GradeAnswer(q, "es"))
	assert.Equal(t, "b", CorrectAnswer(q))
}

func TestGradeAnswer_UntypedBody(t *testing.T) {
	assert.False(t, GradeAnswer(model.Question{}, "a"))
	assert.Empty(t, CorrectAnswer(model.Question{}))
}

func TestScorecard(t *testing.T) {
	card := NewScorecard()
	card.Add(model.Question{Difficulty: model.DifficultyHard, Body: model.WritingBody{CorrectText: "x"}}, true)
	card.Add(model.Question{Difficulty: model.DifficultyMedium, Body: model.ReadingBody{}}, false)
	card.Add(model.Question{Difficulty: model.DifficultyEasy, Body: model.ReadingBody{}}, true)

	assert.Equal(t, 4, card.Total)
	assert.Equal(t, 6, card.Max)
	assert.Equal(t, 3, card.ByCategory[model.CategoryWriting])
	assert.Equal(t, 1, card.ByCategory[model.CategoryReading])
	assert.Zero(t, card.ByCategory[model.CategoryListening])
	assert.Equal(t, 66.7, RoundPercentage(card.Percentage()))
	assert.Equal(t, model.LevelOrderIntermediate, card.LevelOrder())
}

func TestLevelOrderFor_Thresholds(t *testing.T) {
	tests := []struct {
		total, max int
		want       int
	}{
		{0, 0, model.LevelOrderBeginner},
		{0, 30, model.LevelOrderBeginner},
		{33, 100, model.LevelOrderBeginner},
		{34, 100, model.LevelOrderIntermediate},
		{66, 100, model.LevelOrderIntermediate},
		{67, 100, model.LevelOrderAdvanced},
		{100, 100, model.LevelOrderAdvanced},
		{2, 3, model.LevelOrderIntermediate},
		{1, 3, model.LevelOrderBeginner},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelOrderFor(tt.total, tt.max), "%d/%d", tt.total, tt.max)
	}
}

func TestLevelOrderFor_Monotonic(t *testing.T) {
	for maxScore := 1; maxScore <= 60; maxScore++ {
		prev := LevelOrderFor(0, maxScore)
		for total := 1; total <= maxScore; total++ {
			order := LevelOrderFor(total, maxScore)
			assert.GreaterOrEqual(t, order, prev, "%d/%d", total, maxScore)
			prev = order
		}
	}
}

func TestPercentage(t *testing.T) {
	assert.Zero(t, Percentage(0, 0))
	assert.Equal(t, 50.0, Percentage(15, 30))
	assert.Equal(t, 33.3, RoundPercentage(Percentage(1, 3)))
	assert.Equal(t, 67.0, RoundPercentage(Percentage(67, 100)))
}
