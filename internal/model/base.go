package model

import (
	"time"
)

// BaseModel carries the shared primary key and timestamps. There is no
// DeletedAt column: deletes are hard deletes with explicit cascades.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
