package model

import "fmt"

// swagger:model TestQuestion
type TestQuestion struct {
	BaseModel

	LanguageID    uint       `gorm:"index:idx_test_questions_cell,priority:1;not null" json:"language_id"`
	InstructorID  uint       `gorm:"index;not null" json:"instructor_id"`
	Category      Category   `gorm:"type:enum('vocabulary','grammar','reading','listening','writing');index:idx_test_questions_cell,priority:2;not null" json:"category"`
	Difficulty    Difficulty `gorm:"type:tinyint;index:idx_test_questions_cell,priority:3;default:1" json:"difficulty"`
	Passage       *string    `gorm:"type:text" json:"passage"`
	QuestionText  string     `gorm:"type:text;not null" json:"question_text"`
	AudioPath     *string    `gorm:"size:255" json:"audio_path"`
	OptionA       *string    `gorm:"size:500" json:"option_a"`
	OptionB       *string    `gorm:"size:500" json:"option_b"`
	OptionC       *string    `gorm:"size:500" json:"option_c"`
	OptionD       *string    `gorm:"size:500" json:"option_d"`
	CorrectOption *string    `gorm:"type:enum('a','b','c','d')" json:"correct_option"`
	CorrectText   *string    `gorm:"size:1000" json:"correct_text"`

	Language *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
}

func (TestQuestion) TableName() string {
	return "test_questions"
}

// ToQuestion converts a stored row into its typed form. A row whose populated
// columns do not match its category, or whose difficulty is out of range, is
// rejected.
func (r *TestQuestion) ToQuestion() (Question, error) {
	q := Question{
		ID:           r.ID,
		LanguageID:   r.LanguageID,
		InstructorID: r.InstructorID,
		Difficulty:   r.Difficulty,
		Text:         r.QuestionText,
	}
	if !r.Difficulty.Valid() {
		return Question{}, fmt.Errorf("%w: question %d has difficulty %d", ErrMalformedQuestion, r.ID, r.Difficulty)
	}

	if r.Category == CategoryWriting {
		if r.CorrectText == nil || r.CorrectOption != nil {
			return Question{}, fmt.Errorf("%w: writing question %d needs correct_text only", ErrMalformedQuestion, r.ID)
		}
		q.Body = WritingBody{CorrectText: *r.CorrectText}
		return q, nil
	}

	if r.CorrectOption == nil || r.CorrectText != nil {
		return Question{}, fmt.Errorf("%w: %s question %d needs correct_option only", ErrMalformedQuestion, r.Category, r.ID)
	}
	choices := Choices{
		A:       deref(r.OptionA),
		B:       deref(r.OptionB),
		C:       deref(r.OptionC),
		D:       deref(r.OptionD),
		Correct: Option(*r.CorrectOption),
	}
	body, err := NewChoiceBody(r.Category, choices, deref(r.Passage), deref(r.AudioPath))
	if err != nil {
		return Question{}, fmt.Errorf("%w: question %d", err, r.ID)
	}
	q.Body = body
	return q, nil
}

// NewTestQuestion flattens a typed question into a row. Every column is
// written, so columns that do not belong to the category end up NULL.
func NewTestQuestion(q Question) TestQuestion {
	row := TestQuestion{
		LanguageID:   q.LanguageID,
		InstructorID: q.InstructorID,
		Category:     q.Category(),
		Difficulty:   q.Difficulty,
		QuestionText: q.Text,
	}
	row.ID = q.ID

	switch b := q.Body.(type) {
	case WritingBody:
		row.CorrectText = ptr(b.CorrectText)
		return row
	case ReadingBody:
		row.Passage = ptr(b.Passage)
	case ListeningBody:
		if b.AudioPath != "" {
			row.AudioPath = ptr(b.AudioPath)
		}
	}

	if c, ok := q.Choices(); ok {
		row.OptionA = ptr(c.A)
		row.OptionB = ptr(c.B)
		row.OptionC = ptr(c.C)
		row.OptionD = ptr(c.D)
		row.CorrectOption = ptr(string(c.Correct))
	}
	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string {
	return &s
}
