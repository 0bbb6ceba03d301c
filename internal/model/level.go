package model

const (
	LevelOrderBeginner     = 1
	LevelOrderIntermediate = 2
	LevelOrderAdvanced     = 3
)

// swagger:model Level
type Level struct {
	BaseModel

	LanguageID  uint   `gorm:"uniqueIndex:idx_levels_language_order,priority:1;not null" json:"language_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Order       int    `gorm:"uniqueIndex:idx_levels_language_order,priority:2;not null" json:"order"`
}

func (Level) TableName() string {
	return "levels"
}

// LevelTemplate is the per-language seed for one tier of the catalog.
type LevelTemplate struct {
	Name        string
	Description string
	Order       int
}

// DefaultLevels is seeded for every language before tests can be scored.
var DefaultLevels = []LevelTemplate{
	{Name: "Beginner", Description: "Start from scratch with the basics.", Order: LevelOrderBeginner},
	{Name: "Intermediate", Description: "Build on fundamentals and expand your skills.", Order: LevelOrderIntermediate},
	{Name: "Advanced", Description: "Master complex topics and achieve fluency.", Order: LevelOrderAdvanced},
}
