package repository

import (
	"context"
	"errors"
	"lingua_placement/internal/model"
	"lingua_placement/internal/util"

	"gorm.io/gorm"
)

type LanguageRepository struct {
	DB *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{DB: db}
}

func (r *LanguageRepository) FindByID(ctx context.Context, id uint) (*model.Language, error) {
	var lang model.Language
	err := r.DB.WithContext(ctx).First(&lang, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLanguageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lang, nil
}
