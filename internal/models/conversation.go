package models

import (
	"time"

	"gorm.io/gorm"
)

type Conversation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp"`
}

// BeforeCreate stamps the row with the creation time in UTC.
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}
	return nil
}
