package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestQuestion_RoundTrip(t *testing.T) {
	choices := Choices{A: "un", B: "deux", C: "trois", D: "quatre", Correct: OptionC}
	bodies := []QuestionBody{
		VocabularyBody{Choices: choices},
		GrammarBody{Choices: choices},
		ReadingBody{Choices: choices, Passage: "Il était une fois."},
		ListeningBody{Choices: choices, AudioPath: "test-audio/a.mp3"},
		WritingBody{CorrectText: "Bonjour"},
	}
	for _, body := range bodies {
		t.Run(string(body.Category()), func(t *testing.T) {
			q := Question{ID: 3, LanguageID: 1, InstructorID: 2, Difficulty: DifficultyMedium, Text: "Q", Body: body}

			row := NewTestQuestion(q)
			assert.Equal(t, body.Category(), row.Category)

			got, err := row.ToQuestion()
			require.NoError(t, err)
			assert.Equal(t, q, got)
		})
	}
}

func TestNewTestQuestion_LeavesForeignColumnsNull(t *testing.T) {
	row := NewTestQuestion(Question{Difficulty: DifficultyEasy, Body: WritingBody{CorrectText: "oui"}})
	assert.Nil(t, row.OptionA)
	assert.Nil(t, row.CorrectOption)
	assert.Nil(t, row.Passage)
	assert.Nil(t, row.AudioPath)

	row = NewTestQuestion(Question{Difficulty: DifficultyEasy, Body: GrammarBody{Choices: Choices{Correct: OptionA}}})
	assert.Nil(t, row.CorrectText)
	assert.Nil(t, row.Passage)
	require.NotNil(t, row.CorrectOption)
	assert.Equal(t, "a", *row.CorrectOption)
}

func TestTestQuestion_ToQuestionRejectsMalformedRows(t *testing.T) {
	option := "a"
	text := "oui"
	bad := "e"
	tests := []struct {
		name string
		row  TestQuestion
	}{
		{"writing without text", TestQuestion{Category: CategoryWriting, Difficulty: DifficultyEasy}},
		{"writing with option", TestQuestion{Category: CategoryWriting, Difficulty: DifficultyEasy, CorrectText: &text, CorrectOption: &option}},
		{"choice without option", TestQuestion{Category: CategoryGrammar, Difficulty: DifficultyEasy}},
		{"choice with text", TestQuestion{Category: CategoryGrammar, Difficulty: DifficultyEasy, CorrectOption: &option, CorrectText: &text}},
		{"unknown option", TestQuestion{Category: CategoryVocabulary, Difficulty: DifficultyEasy, CorrectOption: &bad}},
		{"unknown category", TestQuestion{Category: "speaking", Difficulty: DifficultyEasy, CorrectOption: &option}},
		{"zero difficulty", TestQuestion{Category: CategoryWriting, CorrectText: &text}},
		{"difficulty above hard", TestQuestion{Category: CategoryVocabulary, Difficulty: 5, CorrectOption: &option}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.row.ToQuestion()
			assert.ErrorIs(t, err, ErrMalformedQuestion)
		})
	}
}

func TestQuestion_Accessors(t *testing.T) {
	q := Question{Body: ListeningBody{Choices: Choices{A: "x", Correct: OptionA}, AudioPath: "k.mp3"}}
	assert.Equal(t, CategoryListening, q.Category())
	assert.Equal(t, "k.mp3", q.AudioPath())

	c, ok := q.Choices()
	require.True(t, ok)
	assert.Equal(t, "x", c.Map()[OptionA])

	w := Question{Body: WritingBody{CorrectText: "y"}}
	_, ok = w.Choices()
	assert.False(t, ok)
	assert.Empty(t, w.AudioPath())
	assert.Empty(t, Question{}.Category())
	assert.False(t, CategoryWriting.MultipleChoice())
	assert.True(t, CategoryReading.MultipleChoice())
}
