package models

import "time"

type UserSettings struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex"`
	Theme     string    `json:"theme" gorm:"size:20;default:light"`
	Language  string    `json:"language" gorm:"size:10;default:en"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
