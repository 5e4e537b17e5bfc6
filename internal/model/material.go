package model

// swagger:model Material
type Material struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	FileType    string `gorm:"size:100" json:"fileType"`
	File        string `gorm:"size:255" json:"file"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	LessonID uint   `gorm:"index;not null" json:"lessonId"`
	Lesson   Lesson `gorm:"foreignKey:LessonID" json:"lessonDetails,omitempty"`
}

func (Material) TableName() string {
	return "materials"
}
