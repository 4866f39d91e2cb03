package models

import "time"

type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;uniqueIndex:idx_tags_user_name"`
	Name      string    `json:"name" gorm:"size:50;uniqueIndex:idx_tags_user_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
