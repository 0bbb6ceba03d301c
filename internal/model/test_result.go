package model

// swagger:model TestResult
type TestResult struct {
	Timestamps

	UserID         uint `gorm:"uniqueIndex:idx_test_results_user_language,priority:1;not null" json:"user_id"`
	LanguageID     uint `gorm:"uniqueIndex:idx_test_results_user_language,priority:2;not null" json:"language_id"`
	LevelID        uint `gorm:"index;not null" json:"level_id"`
	TotalScore     int  `gorm:"type:smallint unsigned;not null" json:"total_score"`
	MaxScore       int  `gorm:"type:smallint unsigned;not null" json:"max_score"`
	VocabScore     int  `gorm:"type:smallint unsigned;default:0" json:"vocab_score"`
	GrammarScore   int  `gorm:"type:smallint unsigned;default:0" json:"grammar_score"`
	ReadingScore   int  `gorm:"type:smallint unsigned;default:0" json:"reading_score"`
	ListeningScore int  `gorm:"type:smallint unsigned;default:0" json:"listening_score"`
	WritingScore   int  `gorm:"type:smallint unsigned;default:0" json:"writing_score"`

	Level *Level `gorm:"foreignKey:LevelID" json:"level,omitempty"`
}

func (TestResult) TableName() string {
	return "test_results"
}

// swagger:model LearnerLevel
type LearnerLevel struct {
	Timestamps

	UserID     uint `gorm:"uniqueIndex:idx_learner_levels_user_language,priority:1;not null" json:"user_id"`
	LanguageID uint `gorm:"uniqueIndex:idx_learner_levels_user_language,priority:2;not null" json:"language_id"`
	LevelID    uint `gorm:"index;not null" json:"level_id"`
}

func (LearnerLevel) TableName() string {
	return "learner_levels"
}
