package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"lingua_placement/internal/model"
	"lingua_placement/internal/repository"
	"lingua_placement/internal/util"
	"lingua_placement/pkg/logger"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuestionStore is the authoring side of the question bank.
type QuestionStore interface {
	List(ctx context.Context, f repository.TestQuestionFilter) ([]model.TestQuestion, error)
	FindByID(ctx context.Context, id uint) (*model.TestQuestion, error)
	Create(ctx context.Context, row *model.TestQuestion) error
	Replace(ctx context.Context, row *model.TestQuestion) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context, languageID uint) ([]repository.QuestionCellCount, error)
}

type LanguageFinder interface {
	FindByID(ctx context.Context, id uint) (*model.Language, error)
}

type QuestionBankService struct {
	Questions QuestionStore
	Languages LanguageFinder
	Storage   StorageProvider
	validate  *validator.Validate
}

func NewQuestionBankService(questions QuestionStore, languages LanguageFinder, storage StorageProvider) *QuestionBankService {
	return &QuestionBankService{
		Questions: questions,
		Languages: languages,
		Storage:   storage,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// TestQuestionReq is the authoring form of a question. Which option fields
// are required depends on Category.
type TestQuestionReq struct {
	LanguageID    uint   `form:"language_id" json:"language_id" validate:"required"`
	Category      string `form:"category" json:"category" validate:"required,oneof=vocabulary grammar reading listening writing"`
	Difficulty    int    `form:"difficulty" json:"difficulty" validate:"required,oneof=1 2 3"`
	QuestionText  string `form:"question_text" json:"question_text" validate:"required,max=2000"`
	Passage       string `form:"passage" json:"passage" validate:"max=5000"`
	OptionA       string `form:"option_a" json:"option_a" validate:"max=500"`
	OptionB       string `form:"option_b" json:"option_b" validate:"max=500"`
	OptionC       string `form:"option_c" json:"option_c" validate:"max=500"`
	OptionD       string `form:"option_d" json:"option_d" validate:"max=500"`
	CorrectOption string `form:"correct_option" json:"correct_option" validate:"omitempty,oneof=a b c d"`
	CorrectText   string `form:"correct_text" json:"correct_text" validate:"max=1000"`
}

type choiceFields struct {
	OptionA       string `validate:"required"`
	OptionB       string `validate:"required"`
	OptionC       string `validate:"required"`
	OptionD       string `validate:"required"`
	CorrectOption string `validate:"required"`
}

// TestQuestionDetail is a bank row as instructors see it, answer key included.
type TestQuestionDetail struct {
	model.TestQuestion
	AudioURL *string `json:"audio_url"`
}

type QuestionBankStats struct {
	LanguageID uint                           `json:"language_id"`
	Total      int64                          `json:"total"`
	Cells      []repository.QuestionCellCount `json:"cells"`
}

func (s *QuestionBankService) List(ctx context.Context, instructorID uint, f repository.TestQuestionFilter) ([]TestQuestionDetail, error) {
	f.InstructorID = instructorID
	rows, err := s.Questions.List(ctx, f)
	if err != nil {
		return nil, err
	}

	details := make([]TestQuestionDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, s.detail(row))
	}
	return details, nil
}

func (s *QuestionBankService) Create(ctx context.Context, instructorID uint, req TestQuestionReq, audio *multipart.FileHeader) (*TestQuestionDetail, error) {
	if err := s.checkRequest(ctx, instructorID, req); err != nil {
		return nil, err
	}

	var audioKey string
	if model.Category(req.Category) == model.CategoryListening {
		if audio == nil {
			return nil, util.ErrAudioRequired
		}
		key, err := s.uploadAudio(ctx, audio)
		if err != nil {
			return nil, err
		}
		audioKey = key
	}

	q, err := buildQuestion(req, audioKey)
	if err != nil {
		s.discardAudio(ctx, audioKey)
		return nil, err
	}
	q.InstructorID = instructorID

	row := model.NewTestQuestion(q)
	if err := s.Questions.Create(ctx, &row); err != nil {
		s.discardAudio(ctx, audioKey)
		return nil, err
	}

	logger.Log.Info("Test question created",
		zap.Uint("question_id", row.ID),
		zap.Uint("language_id", row.LanguageID),
		zap.String("category", string(row.Category)))

	d := s.detail(row)
	return &d, nil
}

// Replace overwrites a question with the request. A listening question keeps
// its current audio unless a new file is sent; other categories lose it.
func (s *QuestionBankService) Replace(ctx context.Context, instructorID, id uint, req TestQuestionReq, audio *multipart.FileHeader) (*TestQuestionDetail, error) {
	existing, err := s.Questions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.InstructorID != instructorID {
		return nil, util.ErrPermissionDenied
	}
	if err := s.checkRequest(ctx, instructorID, req); err != nil {
		return nil, err
	}

	oldKey := ""
	if existing.AudioPath != nil {
		oldKey = *existing.AudioPath
	}

	var uploaded, audioKey string
	if model.Category(req.Category) == model.CategoryListening {
		audioKey = oldKey
		if audio != nil {
			if uploaded, err = s.uploadAudio(ctx, audio); err != nil {
				return nil, err
			}
			audioKey = uploaded
		}
		if audioKey == "" {
			return nil, util.ErrAudioRequired
		}
	}

	q, err := buildQuestion(req, audioKey)
	if err != nil {
		s.discardAudio(ctx, uploaded)
		return nil, err
	}
	q.ID = id
	q.InstructorID = existing.InstructorID

	row := model.NewTestQuestion(q)
	row.CreatedAt = existing.CreatedAt
	if err := s.Questions.Replace(ctx, &row); err != nil {
		s.discardAudio(ctx, uploaded)
		return nil, err
	}

	if oldKey != "" && oldKey != audioKey {
		s.discardAudio(ctx, oldKey)
	}

	d := s.detail(row)
	return &d, nil
}

func (s *QuestionBankService) Delete(ctx context.Context, instructorID, id uint) error {
	existing, err := s.Questions.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.InstructorID != instructorID {
		return util.ErrPermissionDenied
	}

	if err := s.Questions.Delete(ctx, id); err != nil {
		return err
	}
	if existing.AudioPath != nil {
		s.discardAudio(ctx, *existing.AudioPath)
	}
	return nil
}

func (s *QuestionBankService) Stats(ctx context.Context, languageID uint) (*QuestionBankStats, error) {
	if _, err := s.Languages.FindByID(ctx, languageID); err != nil {
		return nil, err
	}
	cells, err := s.Questions.Stats(ctx, languageID)
	if err != nil {
		return nil, err
	}

	stats := &QuestionBankStats{LanguageID: languageID, Cells: cells}
	for _, c := range cells {
		stats.Total += c.Total
	}
	return stats, nil
}

func (s *QuestionBankService) checkRequest(ctx context.Context, instructorID uint, req TestQuestionReq) error {
	if err := s.validateRequest(req); err != nil {
		return err
	}

	lang, err := s.Languages.FindByID(ctx, req.LanguageID)
	if err != nil {
		return err
	}
	if !lang.AssignedTo(instructorID) {
		return util.ErrLanguageNotAssigned
	}
	return nil
}

func (s *QuestionBankService) validateRequest(req TestQuestionReq) error {
	if err := s.validate.Struct(req); err != nil {
		return invalidInput(err)
	}

	switch model.Category(req.Category) {
	case model.CategoryWriting:
		if err := s.validate.Var(strings.TrimSpace(req.CorrectText), "required"); err != nil {
			return fmt.Errorf("%w: correct_text is required for writing questions", util.ErrInvalidQuestionInput)
		}
		return nil
	case model.CategoryReading:
		if err := s.validate.Var(strings.TrimSpace(req.Passage), "required"); err != nil {
			return fmt.Errorf("%w: passage is required for reading questions", util.ErrInvalidQuestionInput)
		}
	}

	if err := s.validate.Struct(choiceFields{
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectOption: req.CorrectOption,
	}); err != nil {
		return invalidInput(err)
	}
	return nil
}

func invalidInput(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", util.ErrInvalidQuestionInput, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", util.ErrInvalidQuestionInput, strings.Join(fields, "; "))
}

func buildQuestion(req TestQuestionReq, audioKey string) (model.Question, error) {
	q := model.Question{
		LanguageID: req.LanguageID,
		Difficulty: model.Difficulty(req.Difficulty),
		Text:       strings.TrimSpace(req.QuestionText),
	}

	category := model.Category(req.Category)
	if category == model.CategoryWriting {
		q.Body = model.WritingBody{CorrectText: strings.TrimSpace(req.CorrectText)}
		return q, nil
	}

	body, err := model.NewChoiceBody(category, model.Choices{
		A:       req.OptionA,
		B:       req.OptionB,
		C:       req.OptionC,
		D:       req.OptionD,
		Correct: model.Option(req.CorrectOption),
	}, strings.TrimSpace(req.Passage), audioKey)
	if err != nil {
		return model.Question{}, fmt.Errorf("%w: %v", util.ErrInvalidQuestionInput, err)
	}
	q.Body = body
	return q, nil
}

func (s *QuestionBankService) uploadAudio(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if !util.IsAudioExtension(file.Filename) {
		return "", fmt.Errorf("%w: allowed extensions are %s", util.ErrInvalidAudio, strings.Join(util.AllowedAudioExtensions, ", "))
	}
	if file.Size > util.MaxAudioSizeBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", util.ErrInvalidAudio, util.MaxAudioSizeBytes)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := util.ValidateMimeType(src, util.AllowedAudioMimeTypes); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrInvalidAudio, err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	key := util.AudioDir + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := s.Storage.Upload(ctx, key, src, file.Size, file.Header.Get("Content-Type")); err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	return key, nil
}

// discardAudio removes a stored object; a failure only leaves an orphan file.
func (s *QuestionBankService) discardAudio(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.Storage.Delete(ctx, key); err != nil {
		logger.Log.Warn("Failed to delete test audio", zap.String("key", key), zap.Error(err))
	}
}

func (s *QuestionBankService) detail(row model.TestQuestion) TestQuestionDetail {
	d := TestQuestionDetail{TestQuestion: row}
	if row.AudioPath != nil && *row.AudioPath != "" {
		url := s.Storage.GetURL(*row.AudioPath)
		d.AudioURL = &url
	}
	return d
}
