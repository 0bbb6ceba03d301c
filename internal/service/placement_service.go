package service

import (
	"context"
	"errors"
	"fmt"
	"lingua_placement/internal/model"
	"lingua_placement/internal/util"
	"lingua_placement/pkg/logger"
	"lingua_placement/pkg/monitoring"
	"lingua_placement/pkg/tracing"
	"math/rand/v2"

	"go.uber.org/zap"
)

// QuestionsPerCell is how many questions are drawn per (category, difficulty).
const QuestionsPerCell = 2

type QuestionBank interface {
	FindQuestions(ctx context.Context, languageID uint, category model.Category, difficulty model.Difficulty) ([]model.Question, error)
	FindQuestionsByIDs(ctx context.Context, ids []uint) (map[uint]model.Question, error)
}

type LevelCatalog interface {
	// FindLevel returns nil, nil when no level of that order exists.
	FindLevel(ctx context.Context, languageID uint, order int) (*model.Level, error)
}

type ResultStore interface {
	// FindResult returns nil, nil when the learner has not taken the test.
	FindResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error)
	// CreateResult persists the result and the learner's level together, and
	// fails with util.ErrTestAlreadyTaken when a result already exists.
	CreateResult(ctx context.Context, result *model.TestResult) error
}

// resultRememberer is implemented by caching result stores.
type resultRememberer interface {
	Remember(ctx context.Context, result *model.TestResult)
}

// storedResultFinder is implemented by caching result stores; it reads past
// the cache so a reset result does not block a new submission.
type storedResultFinder interface {
	FindStoredResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error)
}

// AudioResolver turns a stored audio object name into a URL for the client.
type AudioResolver interface {
	GetURL(filename string) string
}

// Shuffler is the randomness used to sample and order test questions.
// *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultShuffler draws from the runtime's goroutine-safe random source.
var DefaultShuffler Shuffler = globalShuffler{}

type PlacementService struct {
	Questions QuestionBank
	Levels    LevelCatalog
	Results   ResultStore
	Languages LanguageFinder
	Audio     AudioResolver
	Shuffler  Shuffler
}

func NewPlacementService(questions QuestionBank, levels LevelCatalog, results ResultStore, languages LanguageFinder, audio AudioResolver, shuffler Shuffler) *PlacementService {
	if shuffler == nil {
		shuffler = DefaultShuffler
	}
	return &PlacementService{
		Questions: questions,
		Levels:    levels,
		Results:   results,
		Languages: languages,
		Audio:     audio,
		Shuffler:  shuffler,
	}
}

// requireLanguage fails with util.ErrLanguageNotFound for an unknown language.
func (s *PlacementService) requireLanguage(ctx context.Context, languageID uint) error {
	if _, err := s.Languages.FindByID(ctx, languageID); err != nil {
		if errors.Is(err, util.ErrLanguageNotFound) {
			return err
		}
		return fmt.Errorf("find language: %w", err)
	}
	return nil
}

// QuestionView is a question as handed to the learner: never its answer key.
type QuestionView struct {
	ID           uint           `json:"id"`
	Category     model.Category `json:"category"`
	QuestionText string         `json:"question_text"`
	Passage      *string        `json:"passage,omitempty"`
	AudioURL     *string        `json:"audio_url,omitempty"`
	OptionA      *string        `json:"option_a,omitempty"`
	OptionB      *string        `json:"option_b,omitempty"`
	OptionC      *string        `json:"option_c,omitempty"`
	OptionD      *string        `json:"option_d,omitempty"`
}

type AssembledTest struct {
	AlreadyTaken bool
	Result       *model.TestResult
	Questions    []QuestionView
}

// AssembleTest returns the learner's existing result, or a freshly sampled
// test: up to QuestionsPerCell questions from every (category, difficulty)
// cell, shuffled together. Nothing is written.
func (s *PlacementService) AssembleTest(ctx context.Context, learnerID, languageID uint) (_ *AssembledTest, err error) {
	ctx, span := tracing.StartSpan(ctx, "placement.AssembleTest", learnerID, languageID)
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.requireLanguage(ctx, languageID); err != nil {
		return nil, err
	}

	existing, err := s.Results.FindResult(ctx, learnerID, languageID)
	if err != nil {
		return nil, fmt.Errorf("find result: %w", err)
	}
	if existing != nil {
		return &AssembledTest{AlreadyTaken: true, Result: existing}, nil
	}

	picked := make([]model.Question, 0, len(model.Categories)*len(model.Difficulties)*QuestionsPerCell)
	for _, category := range model.Categories {
		for _, difficulty := range model.Difficulties {
			pool, err := s.Questions.FindQuestions(ctx, languageID, category, difficulty)
			if err != nil {
				return nil, fmt.Errorf("find %s questions of difficulty %d: %w", category, difficulty, err)
			}
			picked = append(picked, s.sample(pool, QuestionsPerCell)...)
		}
	}
	s.Shuffler.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })

	views := make([]QuestionView, 0, len(picked))
	for _, q := range picked {
		views = append(views, s.project(q))
	}

	monitoring.ObserveAssembly(len(views))
	logger.Log.Debug("Placement test assembled",
		zap.Uint("learner_id", learnerID),
		zap.Uint("language_id", languageID),
		zap.Int("questions", len(views)),
	)

	return &AssembledTest{Questions: views}, nil
}

// sample draws up to k questions without replacement. pool is not modified.
func (s *PlacementService) sample(pool []model.Question, k int) []model.Question {
	drawn := make([]model.Question, len(pool))
	copy(drawn, pool)
	s.Shuffler.Shuffle(len(drawn), func(i, j int) { drawn[i], drawn[j] = drawn[j], drawn[i] })
	if len(drawn) > k {
		drawn = drawn[:k]
	}
	return drawn
}

func (s *PlacementService) project(q model.Question) QuestionView {
	v := QuestionView{
		ID:           q.ID,
		Category:     q.Category(),
		QuestionText: q.Text,
	}

	switch b := q.Body.(type) {
	case model.ReadingBody:
		v.Passage = &b.Passage
	case model.ListeningBody:
		if b.AudioPath != "" && s.Audio != nil {
			url := s.Audio.GetURL(b.AudioPath)
			v.AudioURL = &url
		}
	}

	if c, ok := q.Choices(); ok {
		v.OptionA, v.OptionB, v.OptionC, v.OptionD = &c.A, &c.B, &c.C, &c.D
	}
	return v
}

type SubmittedAnswer struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type Correction struct {
	QuestionID    uint                    `json:"question_id"`
	Category      model.Category          `json:"category"`
	QuestionText  string                  `json:"question_text"`
	YourAnswer    string                  `json:"your_answer"`
	CorrectAnswer string                  `json:"correct_answer"`
	IsCorrect     bool                    `json:"is_correct"`
	Options       map[model.Option]string `json:"options"`
}

type SubmissionOutcome struct {
	Result       *model.TestResult `json:"result"`
	Percentage   float64           `json:"percentage"`
	LevelName    string            `json:"level_name"`
	CorrectCount int               `json:"correct_count"`
	Corrections  []Correction      `json:"corrections"`
}

// SubmitTest grades the answers, assigns a level and persists the single
// result of the learner for the language.
//
// Answers whose question cannot be resolved are skipped, and so are answers
// to questions of another language: a result only scores its own language.
// A second submission fails with util.ErrTestAlreadyTaken, including when it
// races the first one; a language without the computed level fails with
// util.ErrLevelNotConfigured.
func (s *PlacementService) SubmitTest(ctx context.Context, learnerID, languageID uint, answers []SubmittedAnswer) (_ *SubmissionOutcome, err error) {
	ctx, span := tracing.StartSpan(ctx, "placement.SubmitTest", learnerID, languageID)
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.requireLanguage(ctx, languageID); err != nil {
		monitoring.ObserveSubmission("unknown_language")
		return nil, err
	}

	existing, err := s.findStoredResult(ctx, learnerID, languageID)
	if err != nil {
		monitoring.ObserveSubmission("error")
		return nil, fmt.Errorf("find result: %w", err)
	}
	if existing != nil {
		monitoring.ObserveSubmission("already_taken")
		return nil, util.ErrTestAlreadyTaken
	}

	questions, err := s.Questions.FindQuestionsByIDs(ctx, questionIDs(answers))
	if err != nil {
		monitoring.ObserveSubmission("error")
		return nil, fmt.Errorf("find questions: %w", err)
	}

	card := NewScorecard()
	corrections := make([]Correction, 0, len(answers))
	correctCount := 0
	for _, ans := range answers {
		q, ok := questions[ans.QuestionID]
		if !ok {
			continue
		}
		if q.LanguageID != languageID {
			// Questions are looked up by id alone; another language's question never scores here.
			continue
		}

		correct := GradeAnswer(q, ans.Answer)
		card.Add(q, correct)
		if correct {
			correctCount++
		}
		corrections = append(corrections, newCorrection(q, ans.Answer, correct))
	}

	order := card.LevelOrder()
	level, err := s.Levels.FindLevel(ctx, languageID, order)
	if err != nil {
		monitoring.ObserveSubmission("error")
		return nil, fmt.Errorf("find level: %w", err)
	}
	if level == nil {
		monitoring.ObserveSubmission("level_missing")
		logger.Log.Error("Placement level missing",
			zap.Uint("language_id", languageID),
			zap.Int("order", order),
		)
		return nil, fmt.Errorf("%w: language %d has no level of order %d", util.ErrLevelNotConfigured, languageID, order)
	}

	result := &model.TestResult{
		UserID:         learnerID,
		LanguageID:     languageID,
		LevelID:        level.ID,
		TotalScore:     card.Total,
		MaxScore:       card.Max,
		VocabScore:     card.ByCategory[model.CategoryVocabulary],
		GrammarScore:   card.ByCategory[model.CategoryGrammar],
		ReadingScore:   card.ByCategory[model.CategoryReading],
		ListeningScore: card.ByCategory[model.CategoryListening],
		WritingScore:   card.ByCategory[model.CategoryWriting],
	}
	if err := s.Results.CreateResult(ctx, result); err != nil {
		if errors.Is(err, util.ErrTestAlreadyTaken) {
			monitoring.ObserveSubmission("already_taken")
			return nil, err
		}
		monitoring.ObserveSubmission("error")
		return nil, fmt.Errorf("create result: %w", err)
	}
	result.Level = level
	if r, ok := s.Results.(resultRememberer); ok {
		r.Remember(ctx, result)
	}

	monitoring.ObserveSubmission("scored")
	monitoring.ObserveLevelAssigned(order)
	logger.Log.Info("Placement test scored",
		zap.Uint("learner_id", learnerID),
		zap.Uint("language_id", languageID),
		zap.Int("total_score", card.Total),
		zap.Int("max_score", card.Max),
		zap.Int("level_order", order),
	)

	return &SubmissionOutcome{
		Result:       result,
		Percentage:   RoundPercentage(card.Percentage()),
		LevelName:    level.Name,
		CorrectCount: correctCount,
		Corrections:  corrections,
	}, nil
}

func (s *PlacementService) findStoredResult(ctx context.Context, learnerID, languageID uint) (*model.TestResult, error) {
	if f, ok := s.Results.(storedResultFinder); ok {
		return f.FindStoredResult(ctx, learnerID, languageID)
	}
	return s.Results.FindResult(ctx, learnerID, languageID)
}

func newCorrection(q model.Question, answer string, correct bool) Correction {
	c := Correction{
		QuestionID:    q.ID,
		Category:      q.Category(),
		QuestionText:  q.Text,
		YourAnswer:    answer,
		CorrectAnswer: CorrectAnswer(q),
		IsCorrect:     correct,
	}
	if choices, ok := q.Choices(); ok {
		c.Options = choices.Map()
	}
	return c
}

func questionIDs(answers []SubmittedAnswer) []uint {
	seen := make(map[uint]bool, len(answers))
	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		if !seen[a.QuestionID] {
			seen[a.QuestionID] = true
			ids = append(ids, a.QuestionID)
		}
	}
	return ids
}

// GetResult returns the learner's result, or nil when the test was never taken.
func (s *PlacementService) GetResult(ctx context.Context, learnerID, languageID uint) (_ *model.TestResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "placement.GetResult", learnerID, languageID)
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.requireLanguage(ctx, languageID); err != nil {
		return nil, err
	}

	result, err := s.Results.FindResult(ctx, learnerID, languageID)
	if err != nil {
		return nil, fmt.Errorf("find result: %w", err)
	}
	return result, nil
}
