package model

// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title         string  `gorm:"size:255;not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	Video         string  `gorm:"size:255" json:"video"`
	VideoDuration float64 `gorm:"default:0" json:"videoDuration"` // seconds, probed on upload
	Position      int     `gorm:"default:0" json:"position"`      // listing sort order within the course
	IsActive      bool    `gorm:"default:true" json:"isActive"`

	CourseID uint   `gorm:"index;not null" json:"courseId"`
	Course   Course `gorm:"foreignKey:CourseID" json:"courseDetails,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
