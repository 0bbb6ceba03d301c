package service

import (
	"context"
	"io"
	"lingua_placement/internal/model"
	"lingua_placement/internal/repository"
	"lingua_placement/internal/util"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
)

func seededShuffler() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

type memBank struct {
	questions []model.Question
	cellCalls int
}

func (b *memBank) FindQuestions(ctx context.Context, languageID uint, category model.Category, difficulty model.Difficulty) ([]model.Question, error) {
	b.cellCalls++
	var out []model.Question
	for _, q := range b.questions {
		if q.LanguageID == languageID && q.Category() == category && q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out, nil
}

func (b *memBank) FindQuestionsByIDs(ctx context.Context, ids []uint) (map[uint]model.Question, error) {
	out := make(map[uint]model.Question)
	for _, id := range ids {
		for _, q := range b.questions {
			if q.ID == id {
				out[id] = q
			}
		}
	}
	return out, nil
}

func (b *memBank) byID(id uint) model.Question {
	for _, q := range b.questions {
		if q.ID == id {
			return q
		}
	}
	return model.Question{}
}

// fillBank adds perCell questions to every (category, difficulty) cell of a language.
func fillBank(b *memBank, languageID uint, perCell int) {
	for _, c := range model.Categories {
		for _, d := range model.Difficulties {
			for i := 0; i < perCell; i++ {
				b.questions = append(b.questions, newQuestion(uint(len(b.questions)+1), languageID, c, d))
			}
		}
	}
}

// newQuestion builds a question whose correct answer is "a", or "hello world" for writing.
func newQuestion(id, languageID uint, c model.Category, d model.Difficulty) model.Question {
	q := model.Question{ID: id, LanguageID: languageID, InstructorID: 9, Difficulty: d, Text: "question " + string(c)}
	choices := model.Choices{A: "alpha", B: "bravo", C: "charlie", D: "delta", Correct: model.OptionA}
	switch c {
	case model.CategoryVocabulary:
		q.Body = model.VocabularyBody{Choices: choices}
	case model.CategoryGrammar:
		q.Body = model.GrammarBody{Choices: choices}
	case model.CategoryReading:
		q.Body = model.ReadingBody{Choices: choices, Passage: "Once upon a time."}
	case model.CategoryListening:
		q.Body = model.ListeningBody{Choices: choices, AudioPath: "test-audio/clip.mp3"}
	case model.CategoryWriting:
		q.Body = model.WritingBody{CorrectText: "hello world"}
	}
	return q
}

type memLevels struct {
	levels []model.Level
}

func defaultLevels(languageID uint) *memLevels {
	l := &memLevels{}
	for _, t := range model.DefaultLevels {
		l.levels = append(l.levels, model.Level{
			BaseModel:  model.BaseModel{ID: uint(100*languageID) + uint(t.Order)},
			LanguageID: languageID,
			Name:       t.Name,
			Order:      t.Order,
		})
	}
	return l
}

func (l *memLevels) FindLevel(ctx context.Context, languageID uint, order int) (*model.Level, error) {
	for i := range l.levels {
		if l.levels[i].LanguageID == languageID && l.levels[i].Order == order {
			lvl := l.levels[i]
			return &lvl, nil
		}
	}
	return nil, nil
}

type resultKey struct{ user, language uint }

// memResults mimics the unique index on (user_id, language_id) and the
// learner level upsert done in the same transaction.
type memResults struct {
	mu       sync.Mutex
	results  map[resultKey]model.TestResult
	learners map[resultKey]uint
	nextID   uint
	// beforeCreate runs before the write is attempted.
	beforeCreate func()
}

func newMemResults() *memResults {
	return &memResults{results: map[resultKey]model.TestResult{}, learners: map[resultKey]uint{}}
}

func (r *memResults) FindResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.results[resultKey{userID, languageID}]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (r *memResults) CreateResult(ctx context.Context, result *model.TestResult) error {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	k := resultKey{result.UserID, result.LanguageID}
	if _, ok := r.results[k]; ok {
		return util.ErrTestAlreadyTaken
	}
	r.nextID++
	result.ID = r.nextID
	r.results[k] = *result
	r.learners[k] = result.LevelID
	return nil
}

func (r *memResults) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

type rememberingResults struct {
	*memResults
	remembered []*model.TestResult
}

func (r *rememberingResults) Remember(ctx context.Context, result *model.TestResult) {
	r.remembered = append(r.remembered, result)
}

// staleCacheResults answers FindResult from a cache that still holds a
// result the store no longer has.
type staleCacheResults struct {
	*memResults
	cached *model.TestResult
}

func (r *staleCacheResults) FindResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error) {
	return r.cached, nil
}

func (r *staleCacheResults) FindStoredResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error) {
	return r.memResults.FindResult(ctx, userID, languageID)
}

type staticAudio struct{}

func (staticAudio) GetURL(key string) string { return "/uploads/" + key }

type memStorage struct {
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (s *memStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *memStorage) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *memStorage) GetURL(key string) string { return "/uploads/" + key }

type memQuestionStore struct {
	rows   map[uint]model.TestQuestion
	nextID uint
}

func newMemQuestionStore() *memQuestionStore {
	return &memQuestionStore{rows: map[uint]model.TestQuestion{}}
}

func (s *memQuestionStore) List(ctx context.Context, f repository.TestQuestionFilter) ([]model.TestQuestion, error) {
	var out []model.TestQuestion
	for id := uint(1); id <= s.nextID; id++ {
		row, ok := s.rows[id]
		if !ok || row.InstructorID != f.InstructorID {
			continue
		}
		if f.LanguageID > 0 && row.LanguageID != f.LanguageID {
			continue
		}
		if f.Category != "" && row.Category != f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(row.QuestionText, f.Search) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *memQuestionStore) FindByID(ctx context.Context, id uint) (*model.TestQuestion, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, util.ErrQuestionNotFound
	}
	return &row, nil
}

func (s *memQuestionStore) Create(ctx context.Context, row *model.TestQuestion) error {
	s.nextID++
	row.ID = s.nextID
	s.rows[row.ID] = *row
	return nil
}

func (s *memQuestionStore) Replace(ctx context.Context, row *model.TestQuestion) error {
	if _, ok := s.rows[row.ID]; !ok {
		return util.ErrQuestionNotFound
	}
	s.rows[row.ID] = *row
	return nil
}

func (s *memQuestionStore) Delete(ctx context.Context, id uint) error {
	delete(s.rows, id)
	return nil
}

func (s *memQuestionStore) Stats(ctx context.Context, languageID uint) ([]repository.QuestionCellCount, error) {
	var out []repository.QuestionCellCount
	for _, c := range model.Categories {
		for _, d := range model.Difficulties {
			var n int64
			for _, row := range s.rows {
				if row.LanguageID == languageID && row.Category == c && row.Difficulty == d {
					n++
				}
			}
			if n > 0 {
				out = append(out, repository.QuestionCellCount{Category: c, Difficulty: d, Total: n})
			}
		}
	}
	return out, nil
}

type memLanguages map[uint]*model.Language

func (m memLanguages) FindByID(ctx context.Context, id uint) (*model.Language, error) {
	lang, ok := m[id]
	if !ok {
		return nil, util.ErrLanguageNotFound
	}
	return lang, nil
}

func assignedLanguage(id, instructorID uint) *model.Language {
	return &model.Language{BaseModel: model.BaseModel{ID: id}, Name: "French", Code: "fr", InstructorID: &instructorID, IsActive: true}
}

func newPlacement(t *testing.T, bank *memBank, levels *memLevels, results ResultStore) *PlacementService {
	t.Helper()
	languages := memLanguages{1: assignedLanguage(1, 9), 2: assignedLanguage(2, 9)}
	return NewPlacementService(bank, levels, results, languages, staticAudio{}, seededShuffler())
}
