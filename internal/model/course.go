package model

// swagger:model Course
type Course struct {
	BaseModel
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Banner      string  `gorm:"size:255" json:"banner"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    float64 `gorm:"default:0" json:"duration"` // total hours
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	CategoryID uint     `gorm:"index;not null" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"categoryDetails,omitempty"`

	// InstructorID must reference a user with the teacher role; enforced at write time.
	InstructorID uint `gorm:"index;not null" json:"instructorId"`
	Instructor   User `gorm:"foreignKey:InstructorID" json:"instructorDetails,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
