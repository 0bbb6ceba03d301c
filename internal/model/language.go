package model

// swagger:model Language
type Language struct {
	BaseModel

	Name         string `gorm:"size:100;not null" json:"name"`
	Code         string `gorm:"size:10;uniqueIndex;not null" json:"code"`
	InstructorID *uint  `gorm:"index" json:"instructor_id"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}

func (Language) TableName() string {
	return "languages"
}

// AssignedTo reports whether the language is administered by the instructor.
func (l *Language) AssignedTo(instructorID uint) bool {
	return l.InstructorID != nil && *l.InstructorID == instructorID
}
