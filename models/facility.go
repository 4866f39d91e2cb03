package models

import "time"

type Facility struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:50"`
	Description string    `json:"description" gorm:"size:200"`
	Icon        string    `json:"icon" gorm:"size:50"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
