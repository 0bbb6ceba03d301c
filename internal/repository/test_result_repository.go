package repository

import (
	"context"
	"errors"
	"lingua_placement/internal/model"
	"lingua_placement/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TestResultRepository struct {
	DB *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) *TestResultRepository {
	return &TestResultRepository{DB: db}
}

// FindResult returns the learner's result with its level, or nil, nil.
func (r *TestResultRepository) FindResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error) {
	var result model.TestResult
	err := r.DB.WithContext(ctx).
		Preload("Level", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "language_id", "name", "order")
		}).
		Where("user_id = ? AND language_id = ?", userID, languageID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateResult inserts the result and upserts the learner's level in one
// transaction. The unique index on (user_id, language_id) decides between
// concurrent submissions; the loser gets util.ErrTestAlreadyTaken and
// nothing is written for it.
func (r *TestResultRepository) CreateResult(ctx context.Context, result *model.TestResult) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Level").Create(result).Error; err != nil {
			return err
		}
		return upsertLearnerLevel(tx, result.UserID, result.LanguageID, result.LevelID)
	})
	if isDuplicateKey(err) {
		return util.ErrTestAlreadyTaken
	}
	return err
}

func upsertLearnerLevel(tx *gorm.DB, userID, languageID, levelID uint) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "language_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level_id", "updated_at"}),
	}).Create(&model.LearnerLevel{
		UserID:     userID,
		LanguageID: languageID,
		LevelID:    levelID,
	}).Error
}
