package repository

import (
	"context"
	"errors"
	"lingua_placement/internal/model"
	"lingua_placement/internal/util"
	"lingua_placement/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TestQuestionRepository struct {
	DB *gorm.DB
}

func NewTestQuestionRepository(db *gorm.DB) *TestQuestionRepository {
	return &TestQuestionRepository{DB: db}
}

// FindQuestions returns every question of one (language, category, difficulty) cell.
func (r *TestQuestionRepository) FindQuestions(ctx context.Context, languageID uint, category model.Category, difficulty model.Difficulty) ([]model.Question, error) {
	var rows []model.TestQuestion
	err := r.DB.WithContext(ctx).
		Where("language_id = ? AND category = ? AND difficulty = ?", languageID, category, difficulty).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toQuestions(rows), nil
}

// FindQuestionsByIDs resolves ids to questions. Unknown ids are absent from the map.
func (r *TestQuestionRepository) FindQuestionsByIDs(ctx context.Context, ids []uint) (map[uint]model.Question, error) {
	out := make(map[uint]model.Question, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []model.TestQuestion
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, q := range toQuestions(rows) {
		out[q.ID] = q
	}
	return out, nil
}

// toQuestions drops rows that cannot be typed; they are logged, never graded.
func toQuestions(rows []model.TestQuestion) []model.Question {
	out := make([]model.Question, 0, len(rows))
	for i := range rows {
		q, err := rows[i].ToQuestion()
		if err != nil {
			logger.Log.Warn("Skipping malformed test question", zap.Uint("question_id", rows[i].ID), zap.Error(err))
			continue
		}
		out = append(out, q)
	}
	return out
}

type TestQuestionFilter struct {
	InstructorID uint
	LanguageID   uint
	Category     model.Category
	Difficulty   model.Difficulty
	Search       string
}

func (r *TestQuestionRepository) List(ctx context.Context, f TestQuestionFilter) ([]model.TestQuestion, error) {
	query := r.DB.WithContext(ctx).
		Preload("Language", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "code")
		}).
		Where("instructor_id = ?", f.InstructorID)

	if f.LanguageID > 0 {
		query = query.Where("language_id = ?", f.LanguageID)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Difficulty > 0 {
		query = query.Where("difficulty = ?", f.Difficulty)
	}
	if f.Search != "" {
		query = query.Where("question_text LIKE ?", "%"+f.Search+"%")
	}

	var rows []model.TestQuestion
	err := query.Order("language_id asc, category asc, difficulty asc, id asc").Find(&rows).Error
	return rows, err
}

func (r *TestQuestionRepository) FindByID(ctx context.Context, id uint) (*model.TestQuestion, error) {
	var row model.TestQuestion
	err := r.DB.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *TestQuestionRepository) Create(ctx context.Context, row *model.TestQuestion) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

// Replace overwrites every column of an existing question, NULLs included.
func (r *TestQuestionRepository) Replace(ctx context.Context, row *model.TestQuestion) error {
	res := r.DB.WithContext(ctx).
		Model(&model.TestQuestion{}).
		Where("id = ?", row.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at", "Language").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}

func (r *TestQuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.TestQuestion{}, id).Error
}

type QuestionCellCount struct {
	Category   model.Category   `json:"category"`
	Difficulty model.Difficulty `json:"difficulty"`
	Total      int64            `json:"total"`
}

// Stats counts questions per (category, difficulty) for a language.
func (r *TestQuestionRepository) Stats(ctx context.Context, languageID uint) ([]QuestionCellCount, error) {
	var counts []QuestionCellCount
	err := r.DB.WithContext(ctx).
		Model(&model.TestQuestion{}).
		Select("category, difficulty, COUNT(*) AS total").
		Where("language_id = ?", languageID).
		Group("category, difficulty").
		Order("category asc, difficulty asc").
		Scan(&counts).Error
	return counts, err
}
