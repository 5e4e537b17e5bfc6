package model

type EnrollmentStatus string

const (
	EnrollmentActive   EnrollmentStatus = "active"
	EnrollmentInactive EnrollmentStatus = "inactive"
)

// swagger:model Enrollment
//
// The composite unique index on (student_id, course_id) is the store-level
// guard that keeps concurrent enroll requests from creating duplicates.
type Enrollment struct {
	BaseModel
	StudentID uint `gorm:"uniqueIndex:idx_student_course;not null" json:"studentId"`
	Student   User `gorm:"foreignKey:StudentID" json:"studentDetails,omitempty"`

	CourseID uint   `gorm:"uniqueIndex:idx_student_course;not null" json:"courseId"`
	Course   Course `gorm:"foreignKey:CourseID" json:"courseDetails,omitempty"`

	Status             EnrollmentStatus `gorm:"type:enum('active','inactive');default:'active'" json:"status"`
	Price              float64          `gorm:"default:0" json:"price"`
	Progress           int              `gorm:"default:0" json:"progress"` // 0-100
	IsCompleted        bool             `gorm:"default:false" json:"isCompleted"`
	TotalMark          float64          `gorm:"default:0" json:"totalMark"`
	IsCertificateReady bool             `gorm:"default:false" json:"isCertificateReady"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
