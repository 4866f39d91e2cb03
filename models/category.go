package models

import "time"

// Category is scoped per user; (user, name, type) is unique so a seeded
// default and a custom category never collide.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;uniqueIndex:idx_categories_user_name_type"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex:idx_categories_user_name_type"`
	Type      string    `json:"type" gorm:"size:20;uniqueIndex:idx_categories_user_name_type"`
	IsCustom  bool      `json:"isCustom"`
	Icon      string    `json:"icon" gorm:"size:50"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
