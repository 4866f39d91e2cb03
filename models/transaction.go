package models

import "time"

type Transaction struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"index"`
	Date          time.Time `json:"date" gorm:"index"`
	Description   string    `json:"description" gorm:"size:255"`
	Amount        float64   `json:"amount"`
	CategoryID    uint      `json:"categoryId"`
	Category      Category  `json:"category" gorm:"foreignKey:CategoryID"`
	Type          string    `json:"type" gorm:"size:20;index"`
	AttachmentURL string    `json:"attachmentUrl,omitempty" gorm:"size:500"`
	Tags          []Tag     `json:"tags" gorm:"many2many:transaction_tags;"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
