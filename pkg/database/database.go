package database

import (
	"fmt"
	"lingua_placement/internal/config"
	"lingua_placement/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Unique violations surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate creates or updates every table the placement engine owns.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Language{},
		&model.Level{},
		&model.TestQuestion{},
		&model.TestResult{},
		&model.LearnerLevel{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}

// SeedLevels makes sure every language has the three default levels. Existing
// rows keep their ids; name and description are refreshed.
func SeedLevels(db *gorm.DB) (int, error) {
	var languages []model.Language
	if err := db.Find(&languages).Error; err != nil {
		return 0, err
	}
	if len(languages) == 0 {
		return 0, nil
	}

	levels := make([]model.Level, 0, len(languages)*len(model.DefaultLevels))
	for _, lang := range languages {
		for _, tpl := range model.DefaultLevels {
			levels = append(levels, model.Level{
				LanguageID:  lang.ID,
				Name:        tpl.Name,
				Description: tpl.Description,
				Order:       tpl.Order,
			})
		}
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "language_id"}, {Name: "order"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "updated_at"}),
	}).Create(&levels).Error
	if err != nil {
		return 0, fmt.Errorf("seed levels: %w", err)
	}
	return len(levels), nil
}
