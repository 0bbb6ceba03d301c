package repository

import (
	"context"
	"errors"
	"lingua_placement/internal/model"

	"gorm.io/gorm"
)

type LevelRepository struct {
	DB *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{DB: db}
}

// FindLevel returns nil, nil when the language has no level of that order.
func (r *LevelRepository) FindLevel(ctx context.Context, languageID uint, order int) (*model.Level, error) {
	var level model.Level
	err := r.DB.WithContext(ctx).
		Where("language_id = ? AND `order` = ?", languageID, order).
		First(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &level, nil
}
