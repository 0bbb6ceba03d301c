package model

import "errors"

var ErrMalformedQuestion = errors.New("malformed test question")

type Category string

const (
	CategoryVocabulary Category = "vocabulary"
	CategoryGrammar    Category = "grammar"
	CategoryReading    Category = "reading"
	CategoryListening  Category = "listening"
	CategoryWriting    Category = "writing"
)

// Categories lists every skill area in the order tests are assembled.
var Categories = []Category{
	CategoryVocabulary,
	CategoryGrammar,
	CategoryReading,
	CategoryListening,
	CategoryWriting,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryVocabulary, CategoryGrammar, CategoryReading, CategoryListening, CategoryWriting:
		return true
	}
	return false
}

// MultipleChoice reports whether questions of this category are graded by option letter.
func (c Category) MultipleChoice() bool {
	return c.Valid() && c != CategoryWriting
}

// Difficulty doubles as the point weight of a question.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

func (d Difficulty) Points() int {
	return int(d)
}

type Option string

const (
	OptionA Option = "a"
	OptionB Option = "b"
	OptionC Option = "c"
	OptionD Option = "d"
)

func (o Option) Valid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// Choices is the shared payload of every multiple-choice category.
type Choices struct {
	A       string
	B       string
	C       string
	D       string
	Correct Option
}

// Map returns the four options keyed by letter.
func (c Choices) Map() map[Option]string {
	return map[Option]string{OptionA: c.A, OptionB: c.B, OptionC: c.C, OptionD: c.D}
}

func (c Choices) choiceSet() Choices { return c }

// QuestionBody is the category-specific payload of a question. The set of
// implementations is closed: VocabularyBody, GrammarBody, ReadingBody,
// ListeningBody and WritingBody.
type QuestionBody interface {
	Category() Category
	questionBody()
}

type VocabularyBody struct{ Choices }

type GrammarBody struct{ Choices }

type ReadingBody struct {
	Choices
	Passage string
}

type ListeningBody struct {
	Choices
	AudioPath string
}

type WritingBody struct {
	CorrectText string
}

func (VocabularyBody) Category() Category { return CategoryVocabulary }
func (GrammarBody) Category() Category    { return CategoryGrammar }
func (ReadingBody) Category() Category    { return CategoryReading }
func (ListeningBody) Category() Category  { return CategoryListening }
func (WritingBody) Category() Category    { return CategoryWriting }

func (VocabularyBody) questionBody() {}
func (GrammarBody) questionBody()    {}
func (ReadingBody) questionBody()    {}
func (ListeningBody) questionBody()  {}
func (WritingBody) questionBody()    {}

// Question is one item of a language's question bank.
type Question struct {
	ID           uint
	LanguageID   uint
	InstructorID uint
	Difficulty   Difficulty
	Text         string
	Body         QuestionBody
}

func (q Question) Category() Category {
	if q.Body == nil {
		return ""
	}
	return q.Body.Category()
}

// Choices returns the option set of a multiple-choice question.
func (q Question) Choices() (Choices, bool) {
	cb, ok := q.Body.(interface{ choiceSet() Choices })
	if !ok {
		return Choices{}, false
	}
	return cb.choiceSet(), true
}

// AudioPath returns the stored audio object of a listening question.
func (q Question) AudioPath() string {
	if lb, ok := q.Body.(ListeningBody); ok {
		return lb.AudioPath
	}
	return ""
}

// NewChoiceBody builds the body for a multiple-choice category. Passage and
// audio are only kept by the categories that carry them.
func NewChoiceBody(category Category, choices Choices, passage, audioPath string) (QuestionBody, error) {
	if !choices.Correct.Valid() {
		return nil, ErrMalformedQuestion
	}
	switch category {
	case CategoryVocabulary:
		return VocabularyBody{Choices: choices}, nil
	case CategoryGrammar:
		return GrammarBody{Choices: choices}, nil
	case CategoryReading:
		return ReadingBody{Choices: choices, Passage: passage}, nil
	case CategoryListening:
		return ListeningBody{Choices: choices, AudioPath: audioPath}, nil
	}
	return nil, ErrMalformedQuestion
}
