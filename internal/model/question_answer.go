package model

// swagger:model QuestionAnswer
type QuestionAnswer struct {
	BaseModel
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text" json:"answer"` // filled in by the course owner
	IsActive bool   `gorm:"default:true" json:"isActive"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"userDetails,omitempty"`

	LessonID uint   `gorm:"index;not null" json:"lessonId"`
	Lesson   Lesson `gorm:"foreignKey:LessonID" json:"lessonDetails,omitempty"`
}

func (QuestionAnswer) TableName() string {
	return "question_answers"
}
