package model

// swagger:model Category
type Category struct {
	BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

func (Category) TableName() string {
	return "categories"
}
